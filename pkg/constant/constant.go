package constant

const (
	// DefaultTokenType is the token_type value returned with every token pair.
	DefaultTokenType = "bearer"
)
