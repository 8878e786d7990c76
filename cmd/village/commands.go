package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"village/internal/models"
	"village/internal/service"
	"village/internal/views"
)

// organizerName is how the signed-in user is credited on things they create
const organizerName = "You"

var errUsage = errors.New("usage")

// app runs commands against one session and one community store
type app struct {
	ctx       context.Context
	out       io.Writer
	session   *service.SessionService
	community *service.CommunityService
	backup    *service.BackupService
	now       func() time.Time
}

func (a *app) clock() time.Time {
	if a.now != nil {
		return a.now()
	}
	return time.Now()
}

func (a *app) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

// run dispatches a single command line
func (a *app) run(args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return a.login(rest)
	case "signup":
		return a.signup(rest)
	case "logout":
		a.session.Logout(a.ctx)
		fmt.Fprintln(a.out, "Signed out.")
		return nil
	case "whoami":
		return a.whoami()
	case "profile":
		return a.profile(rest)
	case "dashboard":
		return a.dashboard()
	case "playdates":
		return a.playdates(rest)
	case "care":
		return a.care(rest)
	case "community":
		return a.communityCmd(rest)
	case "resources":
		return a.resources(rest)
	case "export":
		return a.export(rest)
	case "import":
		return a.importCmd(rest)
	case "help":
		printUsage(a.out)
		return nil
	default:
		return errUsage
	}
}

// exitCode reports err and maps it to a process exit status. A -h request has
// already printed its flag defaults and succeeds.
func exitCode(err error, stdout, stderr io.Writer) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		printUsage(stdout)
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return 1
}

// shell runs commands line by line against the same in-memory stores until EOF or "exit"
func (a *app) shell(scanner *bufio.Scanner) error {
	fmt.Fprintln(a.out, "Welcome to The Village. Type 'help' for commands, 'exit' to quit.")
	for {
		fmt.Fprint(a.out, "village> ")
		if !scanner.Scan() {
			fmt.Fprintln(a.out)
			return scanner.Err()
		}

		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" || args[0] == "quit" {
			return nil
		}
		if args[0] == "shell" {
			fmt.Fprintln(a.out, "Already in the shell.")
			continue
		}

		if err := a.run(args); err != nil {
			if errors.Is(err, errUsage) {
				fmt.Fprintf(a.out, "Unknown command %q. Type 'help' for commands.\n", args[0])
				continue
			}
			if errors.Is(err, flag.ErrHelp) {
				continue
			}
			fmt.Fprintf(a.out, "Error: %v\n", err)
		}
	}
}

// requireUser gates protected screens the way the navigation shell does
func (a *app) requireUser(path string) (models.User, error) {
	res := views.Resolve(path, a.session.IsAuthenticated(), a.session.Loading())
	switch res.Outcome {
	case views.Render:
		user, _ := a.session.CurrentUser()
		return user, nil
	case views.Pending:
		return models.User{}, errors.New("session is still loading")
	default:
		return models.User{}, fmt.Errorf("%w: run 'village login' or 'village signup' first", service.ErrNoSession)
	}
}

func (a *app) login(args []string) error {
	fs := a.newFlagSet("login")
	email := fs.String("email", service.DemoEmail, "Email address")
	password := fs.String("password", "", "Password")
	forgot := fs.Bool("forgot", false, "Reset a forgotten password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *forgot {
		return service.Unsupported(service.ActionResetPassword)
	}

	user := a.session.Login(a.ctx, *email, *password)
	fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Name)
	return nil
}

func (a *app) signup(args []string) error {
	var form views.SignupForm
	fs := a.newFlagSet("signup")
	fs.StringVar(&form.Name, "name", "", "Your name (required)")
	fs.StringVar(&form.Email, "email", "", "Email address (required)")
	fs.StringVar(&form.Location, "location", "", "City, State")
	fs.StringVar(&form.Password, "password", "", "Password (required)")
	fs.StringVar(&form.ConfirmPassword, "confirm", "", "Confirm password")
	fs.StringVar(&form.ChildName, "child-name", "", "Child's name (required)")
	fs.StringVar(&form.ChildAge, "child-age", "", "Child's age (required)")
	fs.StringVar(&form.ChildNeeds, "child-needs", "", "Comma separated needs")
	fs.StringVar(&form.ChildInterests, "child-interests", "", "Comma separated interests")
	if err := fs.Parse(args); err != nil {
		return err
	}

	draft, err := form.Draft()
	if err != nil {
		return err
	}

	user := a.session.Signup(a.ctx, draft)
	fmt.Fprintf(a.out, "Welcome to The Village, %s!\n", user.Name)
	return nil
}

func (a *app) whoami() error {
	user, ok := a.session.CurrentUser()
	if !ok {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s>\n", user.Name, user.Email)
	return nil
}

func (a *app) profile(args []string) error {
	user, err := a.requireUser(views.PathProfile)
	if err != nil {
		return err
	}

	form := views.NewProfileForm(user)
	fs := a.newFlagSet("profile")
	fs.StringVar(&form.Name, "name", form.Name, "Display name")
	fs.StringVar(&form.Location, "location", form.Location, "City, State")
	fs.StringVar(&form.Bio, "bio", form.Bio, "About you")
	changePhoto := fs.Bool("change-photo", false, "Upload a new profile photo")
	settings := fs.Bool("settings", false, "Open account settings")
	privacy := fs.Bool("privacy", false, "Open privacy settings")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *changePhoto:
		return service.Unsupported(service.ActionChangePhoto)
	case *settings:
		return service.Unsupported(service.ActionAccountSettings)
	case *privacy:
		return service.Unsupported(service.ActionPrivacySettings)
	}

	if fs.NFlag() > 0 {
		update, err := form.Update()
		if err != nil {
			return err
		}
		if user, err = a.session.UpdateProfile(a.ctx, update); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Profile updated!")
	}

	printProfile(a.out, user)
	return nil
}

func (a *app) dashboard() error {
	user, err := a.requireUser(views.PathDashboard)
	if err != nil {
		return err
	}

	d := views.BuildDashboard(user, a.community.Playdates(), a.community.CareRequests(), a.community.CommunityMembers())
	fmt.Fprintf(a.out, "Welcome back, %s!\n", d.User.Name)
	fmt.Fprintf(a.out, "%d playdates  %d care requests  %d members\n\n", d.PlaydateCount, d.CareRequestCount, d.MemberCount)

	fmt.Fprintln(a.out, "Upcoming playdates:")
	for _, p := range d.UpcomingPlaydates {
		fmt.Fprintf(a.out, "  %s  %s %s @ %s\n", p.Title, p.Date, p.Time, p.Location)
	}
	fmt.Fprintln(a.out, "Recent care requests:")
	for _, r := range d.RecentRequests {
		fmt.Fprintf(a.out, "  %s for %s on %s (%s)\n", r.Type.Label(), r.Requester, r.Date, r.Status)
	}
	fmt.Fprintln(a.out, "Community members:")
	for _, m := range d.FeaturedMembers {
		fmt.Fprintf(a.out, "  %s, %s\n", m.Name, m.Location)
	}
	return nil
}

func (a *app) playdates(args []string) error {
	if _, err := a.requireUser(views.PathPlaydates); err != nil {
		return err
	}

	var form views.PlaydateForm
	fs := a.newFlagSet("playdates")
	search := fs.String("search", "", "Filter by title, location or need")
	create := fs.Bool("create", false, "Create a playdate from the form flags")
	join := fs.String("join", "", "Join the playdate with this ID")
	fs.StringVar(&form.Title, "title", "", "Title")
	fs.StringVar(&form.Date, "date", "", "Date (YYYY-MM-DD)")
	fs.StringVar(&form.Time, "time", "", "Time")
	fs.StringVar(&form.Location, "location", "", "Location")
	fs.StringVar(&form.MaxParticipants, "max", "", "Maximum participants")
	fs.StringVar(&form.AgeRange, "age-range", "", "Age range, e.g. 5-8")
	fs.StringVar(&form.Needs, "needs", "", "Comma separated needs")
	fs.StringVar(&form.Description, "description", "", "Description")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *create {
		draft, err := form.Draft(organizerName)
		if err != nil {
			return err
		}
		p := a.community.AddPlaydate(draft)
		fmt.Fprintf(a.out, "Playdate created! %q has ID %s.\n", p.Title, p.ID)
		return nil
	}

	if *join != "" {
		p, err := a.community.Playdate(*join)
		if err != nil {
			return err
		}
		if p.IsFull() {
			return fmt.Errorf("%q is full", p.Title)
		}
		a.community.JoinPlaydate(*join)
		fmt.Fprintf(a.out, "Joined playdate! You've successfully joined %q.\n", p.Title)
		return nil
	}

	upcoming, past := views.PartitionPlaydates(views.FilterPlaydates(a.community.Playdates(), *search), a.clock())
	fmt.Fprintf(a.out, "Upcoming (%d)\n", len(upcoming))
	for _, p := range upcoming {
		printPlaydate(a.out, p)
	}
	fmt.Fprintf(a.out, "Past (%d)\n", len(past))
	for _, p := range past {
		printPlaydate(a.out, p)
	}
	return nil
}

func (a *app) care(args []string) error {
	if _, err := a.requireUser(views.PathCarePool); err != nil {
		return err
	}

	var form views.CareRequestForm
	fs := a.newFlagSet("care")
	search := fs.String("search", "", "Filter by description or need")
	create := fs.Bool("create", false, "Post a care request from the form flags")
	match := fs.String("match", "", "Offer help on the request with this ID")
	fs.StringVar(&form.Type, "type", string(models.CareBabysitting), "babysitting, playdate-swap, emergency-care or respite-care")
	fs.StringVar(&form.Date, "date", "", "Date (YYYY-MM-DD)")
	fs.StringVar(&form.Time, "time", "", "Time window")
	fs.StringVar(&form.Children, "children", "", "Number of children")
	fs.StringVar(&form.Needs, "needs", "", "Comma separated needs")
	fs.StringVar(&form.Description, "description", "", "Description")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *create {
		draft, err := form.Draft(organizerName)
		if err != nil {
			return err
		}
		r := a.community.AddCareRequest(draft)
		fmt.Fprintf(a.out, "Care request posted! ID %s.\n", r.ID)
		return nil
	}

	if *match != "" {
		r, err := a.community.MatchCareRequest(*match)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Thanks for offering help to %s!\n", r.Requester)
		return nil
	}

	open, matched := views.PartitionCareRequests(views.FilterCareRequests(a.community.CareRequests(), *search))
	fmt.Fprintf(a.out, "Open (%d)\n", len(open))
	for _, r := range open {
		printCareRequest(a.out, r)
	}
	fmt.Fprintf(a.out, "Matched (%d)\n", len(matched))
	for _, r := range matched {
		printCareRequest(a.out, r)
	}
	return nil
}

func (a *app) communityCmd(args []string) error {
	if _, err := a.requireUser(views.PathCommunity); err != nil {
		return err
	}

	fs := a.newFlagSet("community")
	search := fs.String("search", "", "Filter by name or location")
	filter := fs.String("filter", views.AllFilter, "all, autism, adhd, sensory or learning")
	message := fs.String("message", "", "Message the member with this ID")
	connect := fs.String("connect", "", "Connect with the member with this ID")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *message != "" {
		return service.Unsupported(service.ActionMessageMember)
	}
	if *connect != "" {
		return service.Unsupported(service.ActionConnectMember)
	}

	members := views.FilterMembers(a.community.CommunityMembers(), *search, *filter)
	fmt.Fprintf(a.out, "%d members\n", len(members))
	for _, m := range members {
		verified := ""
		if m.Verified {
			verified = " (verified)"
		}
		fmt.Fprintf(a.out, "  [%s] %s%s, %s, %.1f stars, %s\n", m.ID, m.Name, verified, m.Location, m.Rating, strings.Join(m.Specialties, ", "))
	}
	return nil
}

func (a *app) resources(args []string) error {
	if _, err := a.requireUser(views.PathResources); err != nil {
		return err
	}

	fs := a.newFlagSet("resources")
	search := fs.String("search", "", "Filter by title, description or author")
	category := fs.String("category", views.AllFilter, "all, activities, services, education or support")
	download := fs.String("download", "", "Download the resource with this ID")
	share := fs.String("share", "", "Share the resource with this ID")
	submit := fs.Bool("submit", false, "Share a new resource")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch {
	case *download != "":
		return service.Unsupported(service.ActionDownload)
	case *share != "":
		return service.Unsupported(service.ActionShare)
	case *submit:
		return service.Unsupported(service.ActionSubmitResource)
	}

	resources := views.FilterResources(a.community.Resources(), *search, *category)
	fmt.Fprintf(a.out, "%d resources\n", len(resources))
	for _, r := range resources {
		fmt.Fprintf(a.out, "  [%s] %s (%s, %s) by %s, %d downloads\n", r.ID, r.Title, r.Category, r.Type, r.Author, r.Downloads)
	}
	return nil
}

func (a *app) export(args []string) error {
	fs := a.newFlagSet("export")
	output := fs.String("output", "", "Output file path (default: village_session_YYYYMMDD_HHMMSS.json)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := *output
	if path == "" {
		path = fmt.Sprintf("village_session_%s.json", a.clock().Format("20060102_150405"))
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := a.backup.Export(a.ctx, path); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Exported session to %s\n", path)
	return nil
}

func (a *app) importCmd(args []string) error {
	fs := a.newFlagSet("import")
	input := fs.String("input", "", "Input file path (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		fs.PrintDefaults()
		return errors.New("-input flag is required")
	}

	if err := a.backup.Import(a.ctx, *input); err != nil {
		return err
	}
	if err := a.session.Restore(a.ctx); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Imported session from %s\n", *input)
	return nil
}

func printProfile(w io.Writer, u models.User) {
	verified := ""
	if u.Verified {
		verified = " (verified)"
	}
	fmt.Fprintf(w, "%s%s\n", u.Name, verified)
	fmt.Fprintf(w, "  Email:    %s\n", u.Email)
	fmt.Fprintf(w, "  Location: %s\n", u.Location)
	if u.Bio != "" {
		fmt.Fprintf(w, "  Bio:      %s\n", u.Bio)
	}
	fmt.Fprintf(w, "  Joined:   %s\n", u.JoinedDate)
	for _, c := range u.Children {
		fmt.Fprintf(w, "  Child:    %s, age %d, needs %s, loves %s\n", c.Name, c.Age, strings.Join(c.Needs, ", "), strings.Join(c.Interests, ", "))
	}
}

func printPlaydate(w io.Writer, p models.Playdate) {
	status := fmt.Sprintf("%d/%d", p.Participants, p.MaxParticipants)
	if p.IsFull() {
		status += " full"
	}
	fmt.Fprintf(w, "  [%s] %s  %s %s @ %s  by %s  %s  ages %s  %s\n",
		p.ID, p.Title, p.Date, p.Time, p.Location, p.Organizer, status, p.AgeRange, strings.Join(p.Needs, ", "))
}

func printCareRequest(w io.Writer, r models.CareRequest) {
	fmt.Fprintf(w, "  [%s] %s for %s  %s %s  %d children  %s\n",
		r.ID, r.Type.Label(), r.Requester, r.Date, r.Time, r.Children, r.Description)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "The Village community CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  village login [-email <email>] [-password <pw>] [-forgot]")
	fmt.Fprintln(w, "  village signup -name <name> -email <email> -password <pw> -confirm <pw> -child-name <name> -child-age <n>")
	fmt.Fprintln(w, "  village logout | whoami | dashboard")
	fmt.Fprintln(w, "  village profile [-name] [-location] [-bio]")
	fmt.Fprintln(w, "  village playdates [-search <term>] [-join <id>] [-create -title -date -time -location -max ...]")
	fmt.Fprintln(w, "  village care [-search <term>] [-match <id>] [-create -type -date -time -children -description ...]")
	fmt.Fprintln(w, "  village community [-search <term>] [-filter all|autism|adhd|sensory|learning]")
	fmt.Fprintln(w, "  village resources [-search <term>] [-category all|activities|services|education|support]")
	fmt.Fprintln(w, "  village export [-output <file>]")
	fmt.Fprintln(w, "  village import -input <file>")
	fmt.Fprintln(w, "  village shell")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Created playdates and care requests last for the process; use 'shell' to keep them.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment Variables:")
	fmt.Fprintln(w, "  STORAGE_DRIVER   sqlite, postgres, mysql, redis or memory (default: sqlite)")
	fmt.Fprintln(w, "  DB_PATH          SQLite database path (default: ./village.db)")
	fmt.Fprintln(w, "  DATABASE_URL     PostgreSQL or MySQL connection URL")
	fmt.Fprintln(w, "  REDIS_ADDR       Redis address (default: localhost:6379)")
	fmt.Fprintln(w, "  STORAGE_KEY      Session record key (default: village_user)")
	fmt.Fprintln(w, "  LOG_LEVEL        debug, info, warn or error (default: info)")
}
