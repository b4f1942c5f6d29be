package configs

// Configurable is a value that may be set from config files.
type Configurable interface {
	ConfigExpr() string
}
