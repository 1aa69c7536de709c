package appconf

// Environment represents the operating environment of the application.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// Config holds all the configuration settings for the application that are
// not specific to the timetable data source.
type Config struct {
	Port      int
	Env       Environment
	ApiKeys   []string
	RateLimit int
	Verbose   bool
}

// EnvFlagToEnvironment converts the -env command-line flag to an Environment.
// Unrecognized values default to Development.
func EnvFlagToEnvironment(envFlag string) Environment {
	switch envFlag {
	case "test":
		return Test
	case "production":
		return Production
	default:
		return Development
	}
}

// String returns the flag spelling of the environment.
func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}
