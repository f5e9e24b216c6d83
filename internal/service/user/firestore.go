package user

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	applog "github.com/janisto/guest-dashboard/internal/platform/logging"
)

const (
	guestsCollection = "guests"
	resourceType     = "guest_profile"
)

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "internal_error"
	}
}

type firestoreProfile struct {
	Name      string    `firestore:"name"`
	Email     string    `firestore:"email"`
	Phone     string    `firestore:"phone"`
	CreatedAt time.Time `firestore:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

func (fp firestoreProfile) toProfile(userID string) *Profile {
	return &Profile{
		ID:        userID,
		Name:      fp.Name,
		Email:     fp.Email,
		Phone:     fp.Phone,
		UpdatedAt: fp.UpdatedAt,
	}
}

// FirestoreStore implements Service using Firestore with transactions.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Get retrieves a profile by user ID.
func (s *FirestoreStore) Get(ctx context.Context, userID string) (*Profile, error) {
	doc, err := s.client.Collection(guestsCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var fp firestoreProfile
	if err := doc.DataTo(&fp); err != nil {
		return nil, err
	}
	return fp.toProfile(userID), nil
}

// Put replaces the profile inside a transaction, keeping the original
// creation time when the document already exists.
func (s *FirestoreStore) Put(ctx context.Context, userID string, params ReplaceParams) (*Profile, error) {
	docRef := s.client.Collection(guestsCollection).Doc(userID)
	n := params.Normalize()

	var result *Profile
	err := s.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		now := time.Now().UTC()
		createdAt := now

		doc, err := tx.Get(docRef)
		switch {
		case err == nil && doc.Exists():
			var existing firestoreProfile
			if err := doc.DataTo(&existing); err != nil {
				return err
			}
			if !existing.CreatedAt.IsZero() {
				createdAt = existing.CreatedAt
			}
		case err != nil && status.Code(err) != codes.NotFound:
			return err
		}

		fp := firestoreProfile{
			Name:      n.Name,
			Email:     n.Email,
			Phone:     n.Phone,
			CreatedAt: createdAt,
			UpdatedAt: now,
		}
		if err := tx.Set(docRef, fp); err != nil {
			return err
		}
		result = fp.toProfile(userID)
		return nil
	})
	if err != nil {
		applog.LogAuditEvent(ctx, applog.AuditEvent{
			Action:       "replace",
			UserID:       userID,
			ResourceType: resourceType,
			ResourceID:   userID,
			Result:       applog.AuditFailure,
			Details:      map[string]any{"error": categorizeError(err)},
		})
		return nil, err
	}

	applog.LogAuditEvent(ctx, applog.AuditEvent{
		Action:       "replace",
		UserID:       userID,
		ResourceType: resourceType,
		ResourceID:   userID,
		Result:       applog.AuditSuccess,
	})
	return result, nil
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
