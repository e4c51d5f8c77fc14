// Package config defines the application configuration model and loads it
// from files and environment variables via viper, validating the result with
// struct tags before handing it to the rest of the application.
package config
