package npm

import (
	"regexp"
	"strings"
)

var (
	requirePattern = regexp.MustCompile(`require\(\s*['"]([^'"\s]+)['"]\s*\)`)
	importPattern  = regexp.MustCompile(`(?m)^\s*import\s+(?:[\w*{}\s,]+\s+from\s+)?['"]([^'"\s]+)['"]`)
	dynamicPattern = regexp.MustCompile(`import\(\s*['"]([^'"\s]+)['"]\s*\)`)
)

// Modules that ship with node or the runtime and never need installing.
var builtinModules = map[string]struct{}{
	"electron": {}, "original-fs": {},
	"assert": {}, "async_hooks": {}, "buffer": {}, "child_process": {}, "cluster": {},
	"console": {}, "constants": {}, "crypto": {}, "dgram": {}, "diagnostics_channel": {},
	"dns": {}, "domain": {}, "events": {}, "fs": {}, "http": {}, "http2": {}, "https": {},
	"inspector": {}, "module": {}, "net": {}, "os": {}, "path": {}, "perf_hooks": {},
	"process": {}, "punycode": {}, "querystring": {}, "readline": {}, "repl": {},
	"stream": {}, "string_decoder": {}, "sys": {}, "timers": {}, "tls": {},
	"trace_events": {}, "tty": {}, "url": {}, "util": {}, "v8": {}, "vm": {},
	"wasi": {}, "worker_threads": {}, "zlib": {},
}

func scanModules(sources []string) []string {
	var modules []string
	seen := map[string]struct{}{}

	for _, source := range sources {
		for _, pattern := range []*regexp.Regexp{requirePattern, importPattern, dynamicPattern} {
			for _, match := range pattern.FindAllStringSubmatch(source, -1) {
				name, ok := packageName(match[1])
				if !ok {
					continue
				}
				if _, dup := seen[name]; dup {
					continue
				}
				seen[name] = struct{}{}
				modules = append(modules, name)
			}
		}
	}

	return modules
}

// packageName reduces a specifier such as "lodash/fp" or "@scope/pkg/sub" to
// the installable package name.
func packageName(specifier string) (string, bool) {
	if specifier == "" || strings.HasPrefix(specifier, ".") || strings.HasPrefix(specifier, "/") {
		return "", false
	}
	if strings.HasPrefix(specifier, "node:") {
		return "", false
	}

	parts := strings.Split(specifier, "/")
	name := parts[0]
	if strings.HasPrefix(name, "@") {
		if len(parts) < 2 || parts[1] == "" {
			return "", false
		}
		name = parts[0] + "/" + parts[1]
	}

	if _, builtin := builtinModules[name]; builtin {
		return "", false
	}
	return name, true
}
