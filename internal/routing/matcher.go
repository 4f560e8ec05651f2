package routing

// Route names a logical destination for an incoming path.
type Route string

const (
	RouteIndex     Route = "index"
	RouteDownload  Route = "download"
	RouteBrandInfo Route = "brand-info"
	RouteStatic    Route = "static"
)

// Rule pairs a route with the path predicate that selects it.
type Rule struct {
	Route   Route
	Matches func(path string) bool
}

func exact(paths ...string) func(string) bool {
	return func(path string) bool {
		for _, p := range paths {
			if path == p {
				return true
			}
		}
		return false
	}
}

// rules is evaluated in order; the first match wins.
var rules = []Rule{
	{Route: RouteIndex, Matches: exact("/", "")},
	{Route: RouteDownload, Matches: exact("/download")},
	{Route: RouteBrandInfo, Matches: exact("/api/brand-info")},
}

// Match resolves a URL path (query already stripped) to a route. Callers pass
// the escaped form, so "/%64ownload" is not "/download". Paths that match no
// logical route resolve to RouteStatic.
func Match(path string) Route {
	for _, rule := range rules {
		if rule.Matches(path) {
			return rule.Route
		}
	}
	return RouteStatic
}

// Logical reports whether the route is synthesized rather than read from disk.
func (r Route) Logical() bool {
	return r != RouteStatic
}
