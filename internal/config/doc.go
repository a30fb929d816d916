// Package config provides the configuration for resumeparser: resource
// locations (skill catalog, annotation model), batch input and output,
// and the upload server.
//
// Values come from defaults, then the optional .resumeparser YAML file,
// then command-line flags.
package config
