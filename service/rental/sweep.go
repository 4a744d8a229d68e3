package rental

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"bookstore/model"
	"bookstore/util/worker"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Sweeper walks rental records and emits due notifications. Emission is
// idempotent: one notification per (book, condition) while the condition
// persists, keyed on the record's bookId+kind rather than message text.
type Sweeper interface {
	CheckUser(ctx context.Context, userID primitive.ObjectID) (int, error)
	CheckAll(ctx context.Context) (int, error)
}

type sweeper struct {
	br      BookRepo
	ur      UserRepo
	warn    time.Duration
	workers int
	now     func() time.Time
}

func NewSweeper(br BookRepo, ur UserRepo, warn time.Duration, workers int) Sweeper {
	return NewSweeperWithClock(br, ur, warn, workers, time.Now)
}

// NewSweeperWithClock injects the time source.
func NewSweeperWithClock(br BookRepo, ur UserRepo, warn time.Duration, workers int, now func() time.Time) Sweeper {
	if warn <= 0 {
		warn = DefaultWarnWindow
	}
	if workers <= 0 {
		workers = 4
	}
	return &sweeper{br: br, ur: ur, warn: warn, workers: workers, now: now}
}

func (s *sweeper) CheckUser(ctx context.Context, userID primitive.ObjectID) (int, error) {
	u, err := s.ur.ByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, makeErr(ErrNotFound)
		}
		return 0, err
	}
	return s.checkUser(ctx, u)
}

// CheckAll fans per-user sweeps out over a worker pool. Each sweep only
// touches its own user's document, so concurrent runs are independent.
func (s *sweeper) CheckAll(ctx context.Context) (int, error) {
	users, err := s.ur.WithRentals(ctx)
	if err != nil {
		return 0, err
	}

	var (
		mu       sync.Mutex
		total    int
		firstErr error
	)
	pool := worker.NewPool(s.workers)
	for i := range users {
		u := &users[i]
		pool.Submit(func() {
			n, err := s.checkUser(ctx, u)
			mu.Lock()
			defer mu.Unlock()
			total += n
			if err != nil && firstErr == nil {
				firstErr = err
			}
		})
	}
	pool.Close()
	return total, firstErr
}

func (s *sweeper) checkUser(ctx context.Context, u *model.User) (int, error) {
	now := s.now()
	emitted := 0

	for _, rec := range u.RentedBooks {
		state, days := Classify(rec, now, s.warn)
		if state == StateActive {
			continue
		}

		kind := model.NotifExpired
		if state == StateExpiringSoon {
			kind = model.NotifExpiringSoon
		}
		if hasNotification(u.Notifications, rec.BookID, kind) {
			continue
		}

		book, err := s.br.ByID(ctx, rec.BookID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				continue // book deleted, stale rental reference
			}
			return emitted, err
		}

		n := model.Notification{
			ID:     primitive.NewObjectID(),
			BookID: rec.BookID,
			Kind:   kind,
			Date:   now,
		}
		if kind == model.NotifExpiringSoon {
			n.Message = fmt.Sprintf("Your rental of %q expires in %d day(s), on %s.",
				book.Title, days, rec.EndDate.Format("2006-01-02"))
		} else {
			n.Message = fmt.Sprintf("Your rental of %q expired on %s.",
				book.Title, rec.EndDate.Format("2006-01-02"))
		}

		if err := s.ur.PushNotification(ctx, u.ID, n); err != nil {
			return emitted, err
		}
		// keep the in-memory view consistent within this run
		u.Notifications = append(u.Notifications, n)
		emitted++
	}
	return emitted, nil
}

func hasNotification(list []model.Notification, bookID primitive.ObjectID, kind model.NotificationKind) bool {
	for _, n := range list {
		if n.BookID == bookID && n.Kind == kind {
			return true
		}
	}
	return false
}
