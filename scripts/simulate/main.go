// Command simulate drives synthetic registrations through the form client
// against a running API. It exercises the whole intake path, including
// analytics events and draft autosave, and is meant for staging smoke runs
// and funnel testing.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alimehmetoglu-sipsy/frigya-sub000/internal/form"
)

var (
	firstNames = []string{"Zeynep", "Mehmet", "Elif", "Emre", "Ayse", "Kerem", "Deniz", "Selin"}
	lastNames  = []string{"Arslan", "Demir", "Kaya", "Celik", "Yilmaz", "Ozturk", "Aydin", "Sahin"}
	sections   = []string{"full_trail", "eastern", "southern", "western", "undecided"}
	timeframes = []string{"next_3_months", "3_6_months", "6_12_months", "just_exploring"}
	groups     = []string{"solo", "couple", "friends", "family"}
	levels     = []string{"none", "day_hikes", "multi_day", "expert"}
	sources    = []string{"friend", "social_media", "search", "blog"}
	goalPool   = []string{"adventure", "nature", "history", "fitness", "solitude"}
)

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "API base URL")
	count := flag.Int("count", 10, "number of registrations to submit")
	abandonRate := flag.Float64("abandon-rate", 0.3, "fraction of sessions abandoned mid-form")
	delay := flag.Duration("delay", 200*time.Millisecond, "pause between sessions")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	client := &http.Client{Timeout: 10 * time.Second}
	submitted, abandoned := 0, 0

	for i := 0; i < *count; i++ {
		sessionID := uuid.NewString()
		if runSession(client, logger, *baseURL, sessionID, rand.Float64() < *abandonRate) {
			submitted++
		} else {
			abandoned++
		}
		time.Sleep(*delay)
	}

	logger.Info("simulation finished",
		zap.Int("submitted", submitted),
		zap.Int("abandoned", abandoned))
}

// runSession walks one synthetic hiker through the form. Abandoned sessions
// stop partway so the funnel report has realistic drop-off.
func runSession(client *http.Client, logger *zap.Logger, baseURL, sessionID string, abandon bool) bool {
	ctrl := form.NewController(form.Options{
		Store:     form.NewMemoryStore(),
		Tracker:   form.NewHTTPTracker(client, baseURL, sessionID, logger),
		Submitter: form.NewHTTPSubmitter(client, baseURL),
		Logger:    logger,
		SessionID: sessionID,
		SaveDelay: 50 * time.Millisecond,
	})

	ctrl.Update(form.Patch{
		InterestedIn: pick(sections),
		Timeframe:    pick(timeframes),
		GroupType:    pick(groups),
	})
	if !ctrl.NextStep() {
		return false
	}
	if abandon {
		logger.Debug("session abandoned", zap.String("session_id", sessionID), zap.Int("step", ctrl.CurrentStep()))
		return false
	}

	first := *pick(firstNames)
	last := *pick(lastNames)
	ctrl.Update(form.Patch{
		FirstName: &first,
		LastName:  &last,
		Email:     ptr(fmt.Sprintf("%s.%s+%s@example.com", strings.ToLower(first), strings.ToLower(last), sessionID[:8])),
		Phone:     ptr(fmt.Sprintf("+9055%08d", rand.Intn(100000000))),
		Country:   ptr("Turkey"),
	})
	if !ctrl.NextStep() {
		return false
	}

	fitness := 1 + rand.Intn(5)
	longest := float64(rand.Intn(80))
	ctrl.Update(form.Patch{
		FitnessLevel:     &fitness,
		HikingExperience: pick(levels),
		LongestHike:      &longest,
	})
	if !ctrl.NextStep() {
		return false
	}

	ctrl.Update(form.Patch{
		Motivation:     ptr(strings.Repeat("I want to walk the old Phrygian roads and sleep under highland stars. ", 5)),
		Goals:          ptrSlice([]string{*pick(goalPool), "nature"}),
		HowDidYouHear:  pick(sources),
		TermsAccepted:  ptrBool(true),
		DataProcessing: ptrBool(true),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := ctrl.Submit(ctx); err != nil {
		logger.Warn("submission failed", zap.String("session_id", sessionID), zap.Error(err))
		return false
	}
	return true
}

func pick(values []string) *string {
	v := values[rand.Intn(len(values))]
	return &v
}

func ptr(v string) *string          { return &v }
func ptrBool(v bool) *bool          { return &v }
func ptrSlice(v []string) *[]string { return &v }
