package environments

type Environment string

const (
	Production  Environment = "production"
	Development Environment = "development"
	Staging     Environment = "staging"
	Test        Environment = "test"
)

// Parse maps an APP_ENV value to a known environment, falling back to development.
func Parse(value string) Environment {
	switch Environment(value) {
	case Production, Staging, Test:
		return Environment(value)
	case "prod":
		return Production
	default:
		return Development
	}
}

func (e Environment) IsProduction() bool {
	return e == Production
}
