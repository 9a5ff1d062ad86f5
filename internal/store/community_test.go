package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"petcare-service/internal/models"
	"petcare-service/internal/seed"
)

func TestCreateGroupAddsCreatorAndEmptySequence(t *testing.T) {
	s := New(seed.Data{})

	group, err := s.CreateGroup("u1", "Cats", "Cat lovers", nil)
	require.NoError(t, err)
	require.NotEmpty(t, group.ID)
	require.Equal(t, "Cats", group.Name)
	require.Equal(t, []string{"u1"}, group.Members)

	msgs, err := s.ListMessages(group.ID)
	require.NoError(t, err)
	require.Empty(t, msgs)

	msg, err := s.SendMessage(group.ID, "u1", "Ana", "hello")
	require.NoError(t, err)
	require.Equal(t, "hello", msg.Content)

	msgs, err = s.ListMessages(group.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Equal(t, msg, msgs[0])
}

func TestCreateGroupDedupesMembers(t *testing.T) {
	s := New(seed.Data{})

	group, err := s.CreateGroup("u1", "Cats", "", []string{"u2", "u2", "u1", "u3"})
	require.NoError(t, err)
	require.Equal(t, []string{"u1", "u2", "u3"}, group.Members)
}

func TestCreateGroupRequiresName(t *testing.T) {
	s := New(seed.Data{})

	_, err := s.CreateGroup("u1", "   ", "", nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.Empty(t, s.ListGroups())
}

func TestSendMessageAppendsChronologically(t *testing.T) {
	s := New(seed.Data{})
	start := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	s.now = steppedClock(start, time.Minute)
	s.newID = sequentialIDs("m")

	group, err := s.CreateGroup("u1", "Cats", "", nil)
	require.NoError(t, err)

	for _, content := range []string{"first", "second", "third"} {
		_, err := s.SendMessage(group.ID, "u1", "Ana", content)
		require.NoError(t, err)
	}

	msgs, err := s.ListMessages(group.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	require.Equal(t, []string{"first", "second", "third"}, []string{msgs[0].Content, msgs[1].Content, msgs[2].Content})
	for i := 1; i < len(msgs); i++ {
		require.False(t, msgs[i].Timestamp.Before(msgs[i-1].Timestamp))
		require.NotEqual(t, msgs[i].ID, msgs[i-1].ID)
	}
}

func TestSendMessageUnknownGroupLeavesStateUntouched(t *testing.T) {
	s := New(seed.Default())
	groupsBefore := s.ListGroups()

	_, err := s.SendMessage("missing", "u1", "Ana", "hello")
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, groupsBefore, s.ListGroups())
	for _, g := range groupsBefore {
		msgs, err := s.ListMessages(g.ID)
		require.NoError(t, err)
		for _, m := range msgs {
			require.NotEqual(t, "hello", m.Content)
		}
	}
}

func TestSendMessageRejectsBlankContent(t *testing.T) {
	s := New(seed.Default())

	_, err := s.SendMessage("1", "u1", "Ana", "")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.SendMessage("1", "u1", "Ana", "   \t")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSendMessageStoresContentVerbatim(t *testing.T) {
	s := New(seed.Default())

	msg, err := s.SendMessage("1", "user1", "Roberto", "  olá pessoal  ")
	require.NoError(t, err)
	require.Equal(t, "  olá pessoal  ", msg.Content)
}

func TestListGroupsIncludesLastMessage(t *testing.T) {
	s := New(seed.Default())

	var cats models.GroupSummary
	for _, g := range s.ListGroups() {
		if g.ID == "1" {
			cats = g
		}
	}
	require.NotNil(t, cats.LastMessage)
	require.Equal(t, "m3", cats.LastMessage.ID)
}

func TestIsMember(t *testing.T) {
	s := New(seed.Default())

	ok, err := s.IsMember("1", "user1")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.IsMember("1", "stranger")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = s.IsMember("missing", "user1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetGroupReturnsIndependentCopy(t *testing.T) {
	s := New(seed.Default())

	g, err := s.GetGroup("1")
	require.NoError(t, err)
	g.Members[0] = "mutated"

	fresh, err := s.GetGroup("1")
	require.NoError(t, err)
	require.NotEqual(t, "mutated", fresh.Members[0])
}
