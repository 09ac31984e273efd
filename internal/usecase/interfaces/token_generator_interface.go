package interfaces

// ITokenGenerator produces the numeric access token that grants a client
// portal access to a submitted proposal. Generate is total and free of
// observable side effects.
type ITokenGenerator interface {
	Generate() string
}
