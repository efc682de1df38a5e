package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"treasury-curve/internal/curve"
	"treasury-curve/internal/domain"
	"treasury-curve/internal/render"
	"treasury-curve/internal/service"

	tele "gopkg.in/telebot.v3"
)

// CurveRefresher is the slice of service.CurveService the bot needs.
type CurveRefresher interface {
	Refresh(ctx context.Context) (*domain.CurveSnapshot, error)
}

const replyTimeout = 20 * time.Second

func StartTelegramBot(curves CurveRefresher) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Println("TELEGRAM_BOT_TOKEN not set, skipping Telegram bot startup")
		return
	}
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		log.Fatalf("failed to create Telegram bot: %v", err)
	}

	b.Handle("/ping", func(c tele.Context) error {
		return c.Send("pong")
	})

	b.Handle("/curve", func(c tele.Context) error {
		ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
		defer cancel()
		snap, err := curves.Refresh(ctx)
		if err != nil {
			return c.Send(ErrorMessage(err))
		}
		return c.Send(CurveMessage(snap))
	})

	b.Handle("/slope", func(c tele.Context) error {
		ctx, cancel := context.WithTimeout(context.Background(), replyTimeout)
		defer cancel()
		snap, err := curves.Refresh(ctx)
		if err != nil {
			return c.Send(ErrorMessage(err))
		}
		return c.Send(SlopeMessage(snap))
	})

	log.Println("Telegram bot started")
	go b.Start()
}

// CurveMessage lists each maturity in curve order followed by the slope lines.
func CurveMessage(snap *domain.CurveSnapshot) string {
	if snap == nil || len(snap.Series) == 0 {
		return "No Treasury quotes available right now.\n" + SlopeMessage(snap)
	}
	var sb strings.Builder
	sb.WriteString(render.Title + "\n")
	for _, p := range snap.Series {
		sb.WriteString(fmt.Sprintf("%s: %s\n", p.Label, render.FormatYield(p.YieldFraction)))
	}
	sb.WriteString("\n")
	sb.WriteString(SlopeMessage(snap))
	return sb.String()
}

// SlopeMessage has one line per configured slope pair.
func SlopeMessage(snap *domain.CurveSnapshot) string {
	if snap == nil || len(snap.Slopes) == 0 {
		return curve.FormatSlope(snap.PrimarySlope())
	}
	lines := make([]string, 0, len(snap.Slopes))
	for _, m := range snap.Slopes {
		lines = append(lines, curve.SlopeLine(m))
	}
	return strings.Join(lines, "\n")
}

func ErrorMessage(err error) string {
	if errors.Is(err, service.ErrRefreshInProgress) {
		return "A refresh is already running, try again in a moment."
	}
	return "Market data is currently unavailable: " + curve.NotAvailable
}
