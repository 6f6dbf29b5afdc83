// Package file provides the TOML-file implementation of driven.ConfigStore.
//
// Values live in config.toml under the museo config directory and are
// exposed as dot-notation keys ("api.key", "fetch.page_size"). A small set of
// environment variables override file values at read time without being
// written back:
//
//	MUSEO_API_KEY   -> api.key
//	MUSEO_API_URL   -> api.base_url
//	MUSEO_DATA_DIR  -> storage.data_dir
package file
