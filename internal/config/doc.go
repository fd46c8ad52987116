// Package config gathers the per-project settings the exposure engine reads:
// extra.resources-dir from the root composer.json (through Viper, with
// SS_ prefixed environment overrides), SS_RESOURCES_DIR from the environment
// or the project .env file, SS_VENDOR_METHOD, and the locked version of the
// reference framework from composer.lock.
package config
