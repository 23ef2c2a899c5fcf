// File: appconf/doc.go

// Package appconf is the configuration and engine resolution core of a
// web-application toolkit. It discovers configuration files for an
// application location and environment, merges them over supplied defaults,
// normalizes and compiles individual settings, and constructs the pluggable
// subsystem engines (logger, session store, template renderer, serializer)
// declared by the resulting configuration.
//
// Features:
//   - Deterministic config file discovery (location + environment, with
//     environment variable overrides)
//   - Multi-format file loading: TOML, YAML, JSON
//   - Deep merge of defaults and discovered files, later files winning
//     at the leaf level
//   - Per-key normalization rules (e.g. charset canonicalization)
//   - Per-key compile triggers that build or mutate engine instances
//   - Extensible engine factory with per-category named constructors
//   - Explicit two-phase construction via Builder
//
// Quick Start:
//
//	cfg, err := appconf.NewBuilder().
//	    WithAppName("myapp").
//	    WithLocation("/srv/myapp").
//	    WithEnvironment("production").
//	    WithDefaults(map[string]any{"charset": "utf-8"}).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	logger, err := cfg.Engine(appconf.CategoryLogger)
//
// Settings are read with Get, Setting, Has and the typed getters, and
// written with Set, which runs the normalization and compile pipeline for
// every key/value pair it is given:
//
//	n, err := cfg.Set("logger", "console", "traces", true)
//
// Merge Precedence:
// Application defaults (WithDefaults) form the lowest layer. Discovered
// files are merged over them in lexicographic path order, later paths
// winning at the leaf level, so the result is reproducible across runs.
// With the default layout the environment file
// <location>/environments/<environment>.<ext> sorts after
// <location>/config.<ext> and overrides it; pointing EnvDir (or
// APPCONF_ENVDIR) at a directory that sorts before the location reverses
// that ordering.
//
// Thread Safety:
// A Config instance is owned by a single application instance. Reads are
// guarded by a read-write mutex, but concurrent writers must coordinate
// externally; the engine pipeline assumes one writer at a time.
package appconf
