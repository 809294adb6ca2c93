package config

// DefaultConfigTemplate is the commented starter configuration written by
// `catalogd config init`. It mirrors DefaultConfig; keep the two in sync.
const DefaultConfigTemplate = `# catalogd configuration.
#
# Values here are overridden by CATALOGD_* environment variables and
# command-line flags.

# Address the HTTP server binds.
listen: ":8080"

# Served as Access-Control-Allow-Origin on every response.
corsOrigin: "*"

# Graceful shutdown bound, Go duration syntax.
shutdownTimeout: 10s

log:
  # Show timestamps in log output.
  timestamps: false

catalogue:
  # Version the "latest" alias resolves to. Defaults to the highest version.
  latest: v3

  versions:
    v1:
      schema: schema/eosc_service_catalogue.schema_v1.json
      fixtures:
        - data/v1/services.json
    v3:
      schema: schema/eosc_service_catalogue.schema_v3.json
      fixtures:
        - data/v3/services.json
`
