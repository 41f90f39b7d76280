// Package api provides the HTTP API for the application
package api

import (
	"time"

	"watchdate/internal/platform/config"
	"watchdate/internal/platform/logger"
	phttp "watchdate/internal/platform/net/http"
	ptime "watchdate/internal/platform/time"

	"watchdate/internal/modkit"
	"watchdate/internal/modkit/httpkit"
	"watchdate/internal/modkit/module"
	"watchdate/internal/modkit/swaggerkit"

	decodermod "watchdate/internal/services/api/decoder/module"
	metamod "watchdate/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         logger.Logger
	Clock          ptime.Clock
	EnableSwagger  bool
	EnableProfiler bool
}

// OptionsFromConfig reads CORE_API_* toggles on top of cfg
func OptionsFromConfig(cfg config.Conf) Options {
	api := cfg.Prefix("CORE_API_")
	return Options{
		Config:         cfg,
		Logger:         *logger.Get(),
		Clock:          ptime.System,
		EnableSwagger:  api.MayBool("SWAGGER", true),
		EnableProfiler: api.MayBool("PROFILER", false),
	}
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Log:   opt.Logger,
		Cfg:   opt.Config,
		Clock: opt.Clock,
	}

	mods := []module.Module{
		metamod.New(deps),
		decodermod.New(deps, decodermod.FromConfig(deps.Cfg)),
	}

	api := deps.Cfg.Prefix("CORE_API_")
	stack := httpkit.CommonStack(httpkit.StackOptions{
		Origins:  api.MayCSV("CORS_ORIGINS", []string{"*"}),
		Slow:     time.Duration(api.MayIntRange("SLOW_MS", 500, 0, 60_000)) * time.Millisecond,
		Timeout:  api.MayDuration("TIMEOUT", 30*time.Second),
		Throttle: api.MayIntRange("THROTTLE", 0, 0, 100_000),
	})

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, stack, func(v1 httpkit.Router) {
		for _, m := range mods {
			// register ports under the module name for cross-module lookups
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(v1)
		}
	})
}
