// Command book makes a booking from the command line and writes the
// page that hands the payment over to eSewa.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"tridivya/internal/booking"
	"tridivya/internal/client/api"
	"tridivya/internal/client/bookingflow"
	"tridivya/internal/client/redirect"
	"tridivya/internal/client/session"
	"tridivya/internal/lib/logger/handlers/slogpretty"
	"tridivya/internal/lib/logger/sl"
	"tridivya/internal/models"
)

// notifier prints what a UI would show as toasts.
type notifier struct {
	log *slog.Logger
}

func (n notifier) Error(msg string)   { n.log.Error(msg) }
func (n notifier) Success(msg string) { n.log.Info(msg) }

func main() {
	var (
		apiURL   = flag.String("api", "http://localhost:8082/api", "API base url")
		stateDir = flag.String("state", defaultStateDir(), "directory holding the saved session")
		email    = flag.String("email", "", "login email, when no session is saved")
		password = flag.String("password", os.Getenv("TRIDIVYA_PASSWORD"), "login password")
		logout   = flag.Bool("logout", false, "clear the saved session and exit")
		out      = flag.String("out", "payment.html", "where to write the payment redirect page")
		timezone = flag.String("tz", "Asia/Kathmandu", "timezone used for today's date")

		form      booking.Form
		private   bool
		method    string
		requested string
	)

	flag.StringVar(&form.SessionType, "type", booking.SessionTypes[0], "session type")
	flag.BoolVar(&private, "private", true, "private session (group otherwise)")
	flag.StringVar(&form.BookingDate, "date", "", "booking date, YYYY-MM-DD")
	flag.StringVar(&form.TimeSlot, "slot", booking.TimeSlots[0], "time slot")
	flag.StringVar(&form.FullName, "name", "", "full name")
	flag.StringVar(&form.Email, "contact-email", "", "contact email, defaults to the account email")
	flag.StringVar(&form.Phone, "phone", "", "phone number")
	flag.StringVar(&requested, "request", "", "special request")
	flag.StringVar(&method, "pay", string(models.PaymentMethodEsewa), "payment method: esewa, khalti or cash")
	flag.Parse()

	log := slog.New(slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: slog.LevelInfo},
	}.NewPrettyHandler(os.Stderr))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store := session.New(session.FilePersister{Dir: *stateDir})
	store.Subscribe(func(status session.Status, st session.State) {
		log.Debug("session changed", slog.String("status", status.String()))
	})

	if err := store.Init(); err != nil {
		log.Warn("failed to restore session", sl.Err(err))
	}

	if *logout {
		if err := store.Logout(); err != nil {
			log.Error("failed to clear session", sl.Err(err))
			os.Exit(1)
		}
		log.Info("logged out")
		return
	}

	client := api.New(*apiURL, store, nil)

	if !store.IsAuthenticated() {
		if *email == "" || *password == "" {
			log.Error("not logged in: pass -email and -password")
			os.Exit(1)
		}

		token, user, err := client.Login(ctx, *email, *password)
		if err != nil {
			log.Error("failed to login", sl.Err(err))
			os.Exit(1)
		}

		if err = store.Login(token, user); err != nil {
			log.Warn("logged in but failed to save session", sl.Err(err))
		}
	}

	if u := store.User(); u != nil && form.Email == "" {
		form.Email = u.Email
	}

	form.SessionMode = booking.ModeOf(private)
	form.SpecialRequest = requested
	form.PaymentMethod = models.PaymentMethod(method)

	loc, err := time.LoadLocation(*timezone)
	if err != nil {
		log.Error("unknown timezone", slog.String("tz", *timezone), sl.Err(err))
		os.Exit(1)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Error("failed to create output file", sl.Err(err))
		os.Exit(1)
	}

	flow := bookingflow.New(client, client, redirect.Page{W: f}, notifier{log: log}, func() string {
		return booking.Today(time.Now().In(loc))
	})
	flow.OnTransition(func(from, to bookingflow.State) {
		log.Debug("booking flow", slog.String("from", from.String()), slog.String("to", to.String()))
	})

	created, err := flow.Submit(ctx, form)
	closeErr := f.Close()

	if err != nil {
		_ = os.Remove(*out)
		os.Exit(1)
	}
	if closeErr != nil {
		log.Error("failed to write payment page", sl.Err(closeErr))
		os.Exit(1)
	}

	log.Info("booking created",
		slog.String("id", created.ID),
		slog.Int("amount", booking.Amount(form.SessionMode)),
	)

	if flow.State() == bookingflow.StateRedirected {
		fmt.Printf("open %s in a browser to pay\n", *out)
	} else {
		_ = os.Remove(*out)
	}
}

func defaultStateDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".tridivya"
	}

	return filepath.Join(dir, "tridivya")
}
