package jwtx

// Signer turns claims into a signed compact JWT.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}
