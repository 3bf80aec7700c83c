// Package config loads environment-based configuration structs.
//
// It is a thin composition of github.com/joho/godotenv (one optional .env
// read per process) and github.com/caarlos0/env (struct-tag parsing). Every
// configurable package in this module declares a Config struct with `env`
// tags and lets the caller populate it through Load or MustLoad, so all
// tuning happens per-environment without code changes.
package config
