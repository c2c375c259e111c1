package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type parsableEnv interface {
	string | int | bool
}

func parseEnv[T parsableEnv](name, value string) T {
	var out T

	switch ptr := any(&out).(type) {
	case *string:
		*ptr = value
	case *int:
		parsed, err := strconv.Atoi(value)
		if err != nil {
			log.Fatalf("environment variable %s is not an integer: %q", name, value)
		}
		*ptr = parsed
	case *bool:
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			log.Fatalf("environment variable %s is not a boolean: %q", name, value)
		}
		*ptr = parsed
	default:
		panic(fmt.Sprintf("unsupported environment variable type for %s", name))
	}

	return out
}

// GetEnv returns the parsed value of the environment variable, or defaultValue
// when it is unset or empty.
func GetEnv[T parsableEnv](name string, defaultValue T) T {
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		return defaultValue
	}
	return parseEnv[T](name, value)
}

// GetRequiredEnv aborts the process when the environment variable is missing.
func GetRequiredEnv[T parsableEnv](name string) T {
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		log.Fatalf("%s environment variable is required", name)
	}
	return parseEnv[T](name, value)
}
