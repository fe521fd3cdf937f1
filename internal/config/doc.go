// Package config holds the options shared by the executor and the public client.
package config
