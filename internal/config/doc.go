// Package config loads display defaults from the environment.
package config
