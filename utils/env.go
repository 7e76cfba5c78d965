package utils

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type EnvType interface {
	string | int | bool | float64 | time.Duration
}

func convertEnv[T EnvType](envVarName, envValue string) T {
	var result any

	switch any(*new(T)).(type) {
	case string:
		result = envValue
	case int:
		intValue, err := strconv.Atoi(envValue)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s: '%s' is not an integer", envVarName, envValue))
		}
		result = intValue
	case bool:
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s: '%s' is not a boolean", envVarName, envValue))
		}
		result = boolValue
	case float64:
		floatValue, err := strconv.ParseFloat(envValue, 64)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s: '%s' is not a float", envVarName, envValue))
		}
		result = floatValue
	case time.Duration:
		durationValue, err := time.ParseDuration(envValue)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s: '%s' is not a duration", envVarName, envValue))
		}
		result = durationValue
	}

	return result.(T)
}

// GetEnv reads an environment variable, falling back to defaultValue when it
// is unset or empty.
func GetEnv[T EnvType](envVarName string, defaultValue T) T {
	envValue, ok := os.LookupEnv(envVarName)
	if !ok || envValue == "" {
		return defaultValue
	}
	return convertEnv[T](envVarName, envValue)
}

// GetRequiredEnv panics when the environment variable is unset or empty.
func GetRequiredEnv[T EnvType](envVarName string) T {
	envValue, ok := os.LookupEnv(envVarName)
	if !ok || envValue == "" {
		panic(fmt.Sprintf("%s environment variable is required", envVarName))
	}
	return convertEnv[T](envVarName, envValue)
}
