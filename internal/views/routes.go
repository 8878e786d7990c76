package views

// Route is an entry in the navigation table
type Route struct {
	Path      string
	Title     string
	Protected bool
}

const (
	PathHome      = "/"
	PathLogin     = "/login"
	PathSignup    = "/signup"
	PathDashboard = "/dashboard"
	PathProfile   = "/profile"
	PathCommunity = "/community"
	PathPlaydates = "/playdates"
	PathCarePool  = "/care-pool"
	PathResources = "/resources"
)

// Routes lists every screen of the app
var Routes = []Route{
	{Path: PathHome, Title: "Home"},
	{Path: PathLogin, Title: "Sign In"},
	{Path: PathSignup, Title: "Join The Village"},
	{Path: PathDashboard, Title: "Dashboard", Protected: true},
	{Path: PathProfile, Title: "Profile", Protected: true},
	{Path: PathCommunity, Title: "Community", Protected: true},
	{Path: PathPlaydates, Title: "Playdates", Protected: true},
	{Path: PathCarePool, Title: "Care Pool", Protected: true},
	{Path: PathResources, Title: "Resources", Protected: true},
}

// NavItem is a bottom navigation entry
type NavItem struct {
	Label string
	Path  string
}

// NavItems is the navigation shown to signed-in users
var NavItems = []NavItem{
	{Label: "Home", Path: PathDashboard},
	{Label: "Community", Path: PathCommunity},
	{Label: "Playdates", Path: PathPlaydates},
	{Label: "Care", Path: PathCarePool},
	{Label: "Resources", Path: PathResources},
	{Label: "Profile", Path: PathProfile},
}

// Outcome describes what the shell should do for a requested path
type Outcome int

const (
	// Render shows the requested route
	Render Outcome = iota
	// Redirect sends the user to the login screen
	Redirect
	// Pending means the session is still restoring
	Pending
	// NotFound means the path is not in the route table
	NotFound
)

func (o Outcome) String() string {
	switch o {
	case Render:
		return "render"
	case Redirect:
		return "redirect"
	case Pending:
		return "pending"
	case NotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Resolution is the result of resolving a path
type Resolution struct {
	Outcome Outcome
	Route   Route
}

// Lookup finds a route by path
func Lookup(path string) (Route, bool) {
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// Resolve decides which route to render for path. Protected routes wait for
// the session restore and send anonymous users to the login screen.
func Resolve(path string, authenticated, loading bool) Resolution {
	route, ok := Lookup(path)
	if !ok {
		return Resolution{Outcome: NotFound}
	}
	if !route.Protected {
		return Resolution{Outcome: Render, Route: route}
	}
	if loading {
		return Resolution{Outcome: Pending, Route: route}
	}
	if !authenticated {
		login, _ := Lookup(PathLogin)
		return Resolution{Outcome: Redirect, Route: login}
	}
	return Resolution{Outcome: Render, Route: route}
}
