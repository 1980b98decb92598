// Package config loads bridge settings.
//
// Values start from Default, are overlaid by an optional YAML file and then
// by environment variables prefixed with BRIDGE_. The result is validated
// before it is returned.
//
//	cfg, err := config.Load("bridge.yaml", nil)
//	if err != nil {
//		return err
//	}
//	factory := bridgeurl.NewFactory(req, container, cfg)
//
// Environment variables:
//
//	BRIDGE_VIEW_ID_RENDER_PARAM    render view-id parameter name
//	BRIDGE_VIEW_ID_RESOURCE_PARAM  resource view-id parameter name
//	BRIDGE_VIEW_STATE_PARAM        view-state parameter excluded from render merges
//	BRIDGE_SERVLET_MAPPINGS        comma separated servlet mappings
//	BRIDGE_DEFAULT_SUFFIXES        comma separated view file suffixes
//	BRIDGE_LOG_LEVEL               debug, info, warn or error
//	BRIDGE_SENTRY_DSN              enables error reporting when set
package config
