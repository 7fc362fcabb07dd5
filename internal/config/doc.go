// WiGLE Processor - Wardriving Capture Scrubbing and Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wigleproc

/*
Package config loads wigleproc settings with Koanf.

Settings are layered, later layers winning:

 1. Built-in defaults (defaultConfig)
 2. YAML file: --settings PATH, else WIGLE_SETTINGS, else the first of
    DefaultConfigPaths that exists
 3. Environment variables with the WIGLE_ prefix (a .env file in the
    working directory is loaded into the environment first)
 4. Command-line flags the operator actually set

Settings are separate from the deny list. The deny list is a JSON document
with blocked MACs, SSIDs and patterns and is referenced here only by path
(filter.deny_list / --config).

# Example YAML

	scrub:
	  output_dir: ./Scrub
	filter:
	  deny_list: ./filter.json
	geofence:
	  enabled: true
	  latitude: 51.5007
	  longitude: -0.1246
	  delta: 0.001
	creeps:
	  fudge_factor: 100
	  min_locations: 2
	  top: 10
	  samples: 3
	  oui_database: /usr/share/ieee-data/oui.txt
	  verbose: false
	storage:
	  enabled: false
	  endpoint: localhost:9000
	  bucket: wardrive
	  prefix: scrubbed
	metrics:
	  textfile: /var/lib/node_exporter/wigleproc.prom
	logging:
	  level: info
	  format: console

# Environment Variables

Every key has a WIGLE_ variable, for example:

	WIGLE_OUTPUT_DIR          scrub.output_dir
	WIGLE_DENY_LIST           filter.deny_list
	WIGLE_LATITUDE            geofence.latitude
	WIGLE_STORAGE_ENDPOINT    storage.endpoint
	WIGLE_LOG_LEVEL           logging.level

See envMappings in koanf.go for the full table.

Load validates the merged result; an invalid setting is a fatal error.
Geofence coordinates and delta are not validated: they are used as given,
and out-of-range values are only logged when a location mode uses them.
*/
package config
