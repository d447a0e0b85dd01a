/*
Package tasksdk provides the wire types and a Go client for the taskboard API.

# Client vs Session

A Client talks to the public endpoints and logs users in. Login returns a
Session that carries the issued token and performs task operations on behalf
of that user:

	client := tasksdk.NewClient("http://localhost:5000")

	if err := client.Register(ctx, "alice", "s3cret"); err != nil {
		// handle *tasksdk.APIError
	}

	session, err := client.Login(ctx, "alice", "s3cret")
	task, err := session.CreateTask(ctx, "buy milk", "")
	task, err = session.MarkDone(ctx, task.ID)
	tasks, err := session.ListTasks(ctx)
	err = session.DeleteTask(ctx, task.ID)

# Errors

Every non-2xx response is returned as an *APIError. The predefined values
compare with errors.Is on status and code:

	_, err := session.MarkDone(ctx, "missing")
	if errors.Is(err, tasksdk.ErrTaskNotFound) {
		// ...
	}

Tokens are valid for one hour and are not refreshed; log in again to obtain
a new Session.

The same types are used by the server to encode responses, so the client and
server cannot drift apart.
*/
package tasksdk
