package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"altranzfest/internal/adapters/festapi"
	"altranzfest/internal/client"
	"altranzfest/internal/domain"
	"altranzfest/internal/repository/memory"
	"altranzfest/internal/repository/redisstore"
)

// Exit codes returned through ExitError.
const (
	ExitUsage       = 2
	ExitNoDraft     = 3
	ExitRejected    = 4
	ExitUnreachable = 5
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

const usage = `festctl - register for Altranz fest events from the terminal.

Usage:
  festctl <command> [options]

Commands:
  events     list the event catalog
  register   choose events and save a registration draft
  pay        confirm payment for the saved draft and submit it
  checkout   register and pay in one step

Run "festctl <command> -h" for the options of a command.
`

// common holds the flags every subcommand accepts.
type common struct {
	api      string
	session  string
	redisURL string
	draftTTL time.Duration
	timeout  time.Duration
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.api, "api", envOr("FESTCTL_API", "http://localhost:8080"), "Base URL of the registration server.")
	fs.StringVar(&c.session, "session", os.Getenv("FESTCTL_SESSION"), "Session id that owns the registration draft.")
	fs.StringVar(&c.redisURL, "redis", os.Getenv("FESTCTL_REDIS_URL"), "Redis URL for drafts shared between commands, e.g. redis://localhost:6379/0.")
	fs.DurationVar(&c.draftTTL, "draft-ttl", redisstore.DefaultDraftTTL, "How long a saved draft stays available.")
	fs.DurationVar(&c.timeout, "timeout", 30*time.Second, "Timeout for each request to the server.")
}

// details holds the registrant flags of register and checkout.
type details struct {
	events     string
	fullName   string
	email      string
	phone      string
	college    string
	department string
	year       string
}

func (d *details) register(fs *flag.FlagSet) {
	fs.StringVar(&d.events, "events", "", "Comma separated event ids, e.g. 1,4.")
	fs.StringVar(&d.fullName, "name", "", "Full name.")
	fs.StringVar(&d.email, "email", "", "Email address.")
	fs.StringVar(&d.phone, "phone", "", "Phone number.")
	fs.StringVar(&d.college, "college", "", "College.")
	fs.StringVar(&d.department, "department", "", "Department.")
	fs.StringVar(&d.year, "year", "", "Year of study.")
}

func (d *details) personal() client.PersonalDetails {
	return client.PersonalDetails{
		FullName:   d.fullName,
		Email:      d.email,
		Phone:      d.phone,
		College:    d.college,
		Department: d.department,
		Year:       d.year,
	}
}

// Run executes one festctl command. Errors that should set a specific exit
// status are returned as *ExitError.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		fmt.Fprint(stdout, usage)
		return nil
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "events":
		return runEvents(ctx, rest, stdout, stderr)
	case "register":
		return runRegister(ctx, rest, stdout, stderr)
	case "pay":
		return runPay(ctx, rest, stdout, stderr)
	case "checkout":
		return runCheckout(ctx, rest, stdout, stderr)
	default:
		fmt.Fprint(stderr, usage)
		return usageError("unknown command %q", cmd)
	}
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("festctl "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// parse returns (true, nil) when -h was requested.
func parse(fs *flag.FlagSet, args []string) (bool, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return false, usageError("unexpected argument %q", fs.Arg(0))
	}
	return false, nil
}

func runEvents(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var c common
	fs := newFlagSet("events", stderr)
	c.register(fs)
	eventType := fs.String("type", string(domain.EventTypeAll), "Filter: All, Technical, Non-Technical or Workshop.")
	if help, err := parse(fs, args); help || err != nil {
		return err
	}

	api := c.client()
	events, err := api.ListEvents(ctx, domain.EventType(*eventType))
	if err != nil {
		return classify(err)
	}
	printEvents(stdout, events, nil)
	return nil
}

func runRegister(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var (
		c common
		d details
	)
	fs := newFlagSet("register", stderr)
	c.register(fs)
	d.register(fs)
	if help, err := parse(fs, args); help || err != nil {
		return err
	}
	if c.redisURL == "" {
		return usageError("register needs -redis so that pay can find the draft")
	}
	if c.session == "" {
		c.session = uuid.NewString()
	}

	drafts, closeDrafts, err := c.drafts(ctx)
	if err != nil {
		return err
	}
	defer closeDrafts()

	session, err := c.newSession(ctx, drafts)
	if err != nil {
		return err
	}
	if _, err := saveDraft(ctx, session, &d, stdout); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "\nDraft saved for session %s. After paying, run:\n  festctl pay -session %s -redis %s -txn <transaction id>\n", c.session, c.session, c.redisURL)
	return nil
}

func runPay(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var c common
	fs := newFlagSet("pay", stderr)
	c.register(fs)
	txn := fs.String("txn", "", "Transaction id of the payment.")
	if help, err := parse(fs, args); help || err != nil {
		return err
	}
	if c.redisURL == "" {
		return usageError("pay needs -redis to load the draft saved by register")
	}
	if c.session == "" {
		return usageError("pay needs -session")
	}

	drafts, closeDrafts, err := c.drafts(ctx)
	if err != nil {
		return err
	}
	defer closeDrafts()

	session := client.NewSession(c.session, c.client(), drafts)
	draft, err := session.EnterPayment(ctx)
	if err != nil {
		return classify(err)
	}
	printDraft(stdout, draft)
	return confirm(ctx, session, *txn, stdout)
}

func runCheckout(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var (
		c common
		d details
	)
	fs := newFlagSet("checkout", stderr)
	c.register(fs)
	d.register(fs)
	txn := fs.String("txn", "", "Transaction id of the payment.")
	if help, err := parse(fs, args); help || err != nil {
		return err
	}
	if c.session == "" {
		c.session = uuid.NewString()
	}
	if strings.TrimSpace(*txn) == "" {
		return classify(domain.NewValidationError("transactionId is required"))
	}

	drafts, closeDrafts, err := c.drafts(ctx)
	if err != nil {
		return err
	}
	defer closeDrafts()

	session, err := c.newSession(ctx, drafts)
	if err != nil {
		return err
	}
	if _, err := saveDraft(ctx, session, &d, stdout); err != nil {
		return err
	}
	return confirm(ctx, session, *txn, stdout)
}

func (c *common) client() domain.RegistrationAPI {
	return festapi.NewHTTPClient(c.api, &http.Client{Timeout: c.timeout})
}

// drafts opens the Redis draft store when -redis is set and an in-process store otherwise.
func (c *common) drafts(ctx context.Context) (domain.DraftStore, func(), error) {
	if c.redisURL == "" {
		return memory.NewDraftStore(), func() {}, nil
	}
	rdb, err := redisstore.NewClient(ctx, c.redisURL)
	if err != nil {
		return nil, nil, &ExitError{Code: ExitUnreachable, Message: fmt.Sprintf("draft store: %v", err)}
	}
	return redisstore.NewDraftStore(rdb, c.draftTTL), func() { _ = rdb.Close() }, nil
}

func (c *common) newSession(ctx context.Context, drafts domain.DraftStore) (*client.Session, error) {
	session := client.NewSession(c.session, c.client(), drafts)
	if err := session.LoadCatalog(ctx); err != nil {
		return nil, classify(err)
	}
	return session, nil
}

// saveDraft applies the -events selection and saves the registration draft.
func saveDraft(ctx context.Context, session *client.Session, d *details, stdout io.Writer) (*domain.RegistrationDraft, error) {
	ids, err := parseIDs(d.events)
	if err != nil {
		return nil, err
	}
	catalog := session.View().Events
	for _, id := range ids {
		if !hasEvent(catalog, id) {
			return nil, usageError("event %d is not in the catalog", id)
		}
		if !session.IsSelected(id) {
			session.Toggle(id)
		}
	}
	printEvents(stdout, nil, session.View().Events)
	fmt.Fprintf(stdout, "Total: ₹%d\n", session.TotalFee())

	draft, err := session.SubmitRegistration(ctx, d.personal())
	if err != nil {
		return nil, classify(err)
	}
	return draft, nil
}

func confirm(ctx context.Context, session *client.Session, txn string, stdout io.Writer) error {
	receipt, err := session.ConfirmPayment(ctx, txn)
	if err != nil && receipt == nil {
		return classify(err)
	}
	fmt.Fprintf(stdout, "%s (id %s)\n", receipt.Message, receipt.RegistrationID)
	if err != nil {
		fmt.Fprintf(stdout, "warning: %v\n", err)
	}
	return nil
}

// classify maps workflow errors to exit codes and user-facing messages.
func classify(err error) error {
	var (
		verr *domain.ValidationError
		serr *domain.ServerError
		terr *domain.TransportError
	)
	switch {
	case errors.As(err, &verr):
		return &ExitError{Code: ExitUsage, Message: verr.Error()}
	case errors.Is(err, domain.ErrDraftAbsent):
		return &ExitError{Code: ExitNoDraft, Message: "no registration draft for this session; start again with festctl register"}
	case errors.As(err, &serr):
		return &ExitError{Code: ExitRejected, Message: fmt.Sprintf("registration rejected: %s (your draft is kept; fix the problem and retry)", serr.Message)}
	case errors.As(err, &terr):
		return &ExitError{Code: ExitUnreachable, Message: fmt.Sprintf("%v; check your connection and retry", terr)}
	default:
		return err
	}
}

func parseIDs(s string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, usageError("invalid event id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func hasEvent(events []client.EventView, id int) bool {
	for _, e := range events {
		if e.ID == id {
			return true
		}
	}
	return false
}

// printEvents writes either a plain catalog or a view with selection marks.
func printEvents(w io.Writer, events domain.Catalog, view []client.EventView) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if view == nil {
		fmt.Fprintln(tw, "ID\tNAME\tTYPE\tFEE")
		for _, e := range events {
			fmt.Fprintf(tw, "%d\t%s\t%s\t₹%d\n", e.ID, e.Name, e.Type, e.Fee)
		}
	} else {
		fmt.Fprintln(tw, "\tID\tNAME\tTYPE\tFEE")
		for _, e := range view {
			mark := "[ ]"
			if e.Selected {
				mark = "[x]"
			}
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t₹%d\n", mark, e.ID, e.Name, e.Type, e.Fee)
		}
	}
	_ = tw.Flush()
}

func printDraft(w io.Writer, d *domain.RegistrationDraft) {
	fmt.Fprintf(w, "Registration for %s <%s>\n", d.FullName, d.Email)
	for _, e := range d.SelectedEvents {
		fmt.Fprintf(w, "  - %s (₹%d)\n", e.Name, e.Fee)
	}
	fmt.Fprintf(w, "Total: ₹%d\n", d.TotalFee)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
