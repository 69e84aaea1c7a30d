package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okoshkin/feedline/internal/client/models"
)

func TestApp_Interests(t *testing.T) {
	capturePrintln(t)
	var saved []string
	sess := feedSession()
	sess.completeInterestsFn = func(ctx context.Context, interests []string) error {
		saved = interests
		return nil
	}
	a := newTestApp(sess, &fakeAPIClient{}, "")

	require.NoError(t, a.Interests(context.Background(), []string{"Music", "ART", " food "}))
	require.Equal(t, []string{"music", "art", "food"}, saved)
}

func TestApp_Interests_RequiresMinimum(t *testing.T) {
	capturePrintln(t)
	sess := feedSession()
	sess.completeInterestsFn = func(ctx context.Context, interests []string) error {
		t.Fatal("backend must not be called with too few interests")
		return nil
	}
	a := newTestApp(sess, &fakeAPIClient{}, "")

	require.Error(t, a.Interests(context.Background(), []string{"music", "art"}))
	require.Error(t, a.Interests(context.Background(), []string{"music", "art", "  "}))
	require.Error(t, a.Interests(context.Background(), nil))
}

func TestApp_EditProfile(t *testing.T) {
	capturePrintln(t)
	stubInputs(t, []string{"new bio", "https://ann.example", "Riga"}, "")

	var got models.ProfileUpdate
	sess := feedSession()
	sess.completeProfileFn = func(ctx context.Context, fields models.ProfileUpdate) error {
		got = fields
		return nil
	}
	a := newTestApp(sess, &fakeAPIClient{}, "")

	require.NoError(t, a.EditProfile(context.Background()))
	require.Equal(t, models.ProfileUpdate{
		Bio:      "new bio",
		Website:  "https://ann.example",
		Location: "Riga",
	}, got)
}

func TestApp_Upload(t *testing.T) {
	capturePrintln(t)
	path := filepath.Join(t.TempDir(), "avatar.png")
	require.NoError(t, os.WriteFile(path, []byte{0x89, 'P', 'N', 'G'}, 0o600))

	var uploaded string
	client := &fakeAPIClient{
		uploadFn: func(ctx context.Context, dataURI string) (string, error) {
			uploaded = dataURI
			return "https://cdn.example.com/avatar.png", nil
		},
	}
	var updated models.User
	sess := feedSession()
	sess.updateUserFn = func(ctx context.Context, partial models.User) error {
		updated = partial
		return nil
	}
	a := newTestApp(sess, client, "")

	require.NoError(t, a.Upload(context.Background(), []string{path}))
	require.True(t, strings.HasPrefix(uploaded, "data:image/png;base64,"))
	require.Equal(t, "https://cdn.example.com/avatar.png", updated.ProfilePicture)
}

func TestApp_Upload_Usage(t *testing.T) {
	capturePrintln(t)
	a := newTestApp(feedSession(), &fakeAPIClient{}, "")
	require.Error(t, a.Upload(context.Background(), nil))
}

func TestApp_Upload_UnreadableImage(t *testing.T) {
	capturePrintln(t)
	client := &fakeAPIClient{
		uploadFn: func(ctx context.Context, dataURI string) (string, error) {
			t.Fatal("upload must not be attempted for an unreadable image")
			return "", nil
		},
	}
	a := newTestApp(feedSession(), client, "")
	require.Error(t, a.Upload(context.Background(), []string{"/nonexistent/pic.png"}))
}

func TestApp_Search(t *testing.T) {
	lines := capturePrintln(t)
	sess := feedSession()
	sess.searchUsersFn = func(ctx context.Context, query string) ([]models.User, error) {
		require.Equal(t, "ann smith", query)
		return []models.User{{Username: "annsmith", FullName: "Ann Smith", Bio: "hello"}}, nil
	}
	a := newTestApp(sess, &fakeAPIClient{}, "")

	require.NoError(t, a.Search(context.Background(), []string{"ann", "smith"}))
	out := strings.Join(*lines, "")
	require.Contains(t, out, "Ann Smith (@annsmith)")
	require.Contains(t, out, "hello")
}

func TestApp_Search_NoResults(t *testing.T) {
	lines := capturePrintln(t)
	a := newTestApp(feedSession(), &fakeAPIClient{}, "")

	require.NoError(t, a.Search(context.Background(), []string{"nobody"}))
	require.Contains(t, strings.Join(*lines, ""), "No users found.")
}

func TestApp_Suggested(t *testing.T) {
	lines := capturePrintln(t)
	sess := feedSession()
	sess.suggestedUsersFn = func(ctx context.Context) ([]models.User, error) {
		return []models.User{{Username: "bob", FullName: "Bob"}}, nil
	}
	a := newTestApp(sess, &fakeAPIClient{}, "")

	require.NoError(t, a.Suggested(context.Background()))
	require.Contains(t, strings.Join(*lines, ""), "Bob (@bob)")
}

func TestApp_Suggested_Error(t *testing.T) {
	capturePrintln(t)
	sess := feedSession()
	sess.suggestedUsersFn = func(ctx context.Context) ([]models.User, error) {
		return nil, errors.New("503")
	}
	a := newTestApp(sess, &fakeAPIClient{}, "")
	require.Error(t, a.Suggested(context.Background()))
}
