// Command dashboard is a terminal client for the guest dashboard API. It
// shows the guest profile, optionally edits it, and lists trips.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/janisto/guest-dashboard/internal/platform/config"
	applog "github.com/janisto/guest-dashboard/internal/platform/logging"
	"github.com/janisto/guest-dashboard/internal/profilesync"
	"github.com/janisto/guest-dashboard/internal/service/guestapi"
)

func main() {
	defer func() { _ = applog.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

type options struct {
	apiURL string
	trips  bool
	edits  map[profilesync.Field]string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	fs.SetOutput(stderr)

	apiURL := fs.String("api", "", "API base URL (overrides DASHBOARD_API_URL)")
	trips := fs.Bool("trips", false, "list upcoming and past bookings and favorites")
	values := map[profilesync.Field]*string{
		profilesync.FieldName:  fs.String("name", "", "new display name"),
		profilesync.FieldEmail: fs.String("email", "", "new email address"),
		profilesync.FieldPhone: fs.String("phone", "", "new phone number"),
	}
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	opts := options{apiURL: *apiURL, trips: *trips, edits: map[profilesync.Field]string{}}
	// Only flags given on the command line are edited; -phone= clears the phone.
	fs.Visit(func(f *flag.Flag) {
		if v, ok := values[profilesync.Field(f.Name)]; ok {
			opts.edits[profilesync.Field(f.Name)] = *v
		}
	})
	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}
	if opts.apiURL != "" {
		cfg.APIURL = opts.apiURL
	}

	client := guestapi.NewClient(&http.Client{Timeout: cfg.Timeout}, guestapi.WithBaseURL(cfg.APIURL))
	ps := profilesync.New(ctx, client, profilesync.WithNotifier(func(msg string) {
		fmt.Fprintln(stderr, "warning:", msg)
	}))
	defer ps.Wait()

	ps.Wait()
	p := ps.Committed()
	fmt.Fprintf(stdout, "Signed in as %s (%s)\n", p.Name, p.Email)

	if len(opts.edits) > 0 {
		ps.StartEdit()
		for _, f := range []profilesync.Field{profilesync.FieldName, profilesync.FieldEmail, profilesync.FieldPhone} {
			if v, ok := opts.edits[f]; ok {
				if err := ps.UpdateDraftField(f, v); err != nil {
					return err
				}
			}
		}
		if err := ps.SaveEdit(); err != nil {
			return err
		}
		printProfile(stdout, "Saved locally", ps.Committed())
		ps.Wait()
		printProfile(stdout, "Profile", ps.Committed())
	}

	if opts.trips {
		return printTrips(ctx, stdout, client)
	}
	return nil
}

func printProfile(w io.Writer, label string, p profilesync.Profile) {
	phone := p.Phone
	if phone == "" {
		phone = "-"
	}
	fmt.Fprintf(w, "%s: name=%q email=%q phone=%q\n", label, p.Name, p.Email, phone)
}

func printTrips(ctx context.Context, w io.Writer, client *guestapi.Client) error {
	upcoming, err := client.ListUpcoming(ctx)
	if err != nil {
		return fmt.Errorf("upcoming bookings: %w", err)
	}
	past, err := client.ListPast(ctx)
	if err != nil {
		return fmt.Errorf("past bookings: %w", err)
	}
	favorites, err := client.ListFavorites(ctx)
	if err != nil {
		return fmt.Errorf("favorites: %w", err)
	}

	fmt.Fprintln(w, "\nUpcoming bookings")
	if len(upcoming) == 0 {
		fmt.Fprintln(w, "  No upcoming bookings")
	}
	for _, b := range upcoming {
		fmt.Fprintf(w, "  %s, %s  %s to %s  %d nights  %d  [%s]\n",
			b.Property, b.Location, b.CheckIn, b.CheckOut, b.Nights, b.Total, b.Status)
	}

	fmt.Fprintln(w, "\nPast bookings")
	if len(past) == 0 {
		fmt.Fprintln(w, "  No past bookings")
	}
	for _, b := range past {
		review := "not reviewed"
		if b.Reviewed {
			review = fmt.Sprintf("rated %d stars", b.Rating)
		}
		fmt.Fprintf(w, "  %s, %s  %s to %s  %s\n", b.Property, b.Location, b.CheckIn, b.CheckOut, review)
	}

	fmt.Fprintln(w, "\nFavorites")
	if len(favorites) == 0 {
		fmt.Fprintln(w, "  No favorites yet")
	}
	for _, f := range favorites {
		fmt.Fprintf(w, "  %s, %s  %d/night  %.1f\n", f.Title, f.Location, f.Price, f.Rating)
	}
	return nil
}
