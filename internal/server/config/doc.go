// Package config defines the berth-server configuration structure.
//
// Configuration is loaded via internal/infra/confloader with priority
// Flag > Env > File > Default. The socket path additionally honors the
// HARBOR_SOCKET environment variable set by the desktop-app host.
package config
