package store

import (
	"strings"

	"petcare-service/internal/models"
)

// CommunityStore is the community surface handlers depend on.
type CommunityStore interface {
	ListGroups() []models.GroupSummary
	GetGroup(id string) (models.Group, error)
	CreateGroup(creatorID, name, description string, memberIDs []string) (models.Group, error)
	IsMember(groupID, userID string) (bool, error)
	ListMessages(groupID string) ([]models.Message, error)
	SendMessage(groupID, userID, userName, content string) (models.Message, error)
}

// ListGroups returns all groups with their most recent message.
func (s *Store) ListGroups() []models.GroupSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.GroupSummary, 0, len(s.groups))
	for _, g := range s.groups {
		summary := models.GroupSummary{Group: cloneGroup(g)}
		if seq := s.messages[g.ID]; len(seq) > 0 {
			last := seq[len(seq)-1]
			summary.LastMessage = &last
		}
		out = append(out, summary)
	}
	return out
}

// GetGroup returns the group with the given id.
func (s *Store) GetGroup(id string) (models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.findGroup(id)
	if !ok {
		return models.Group{}, ErrNotFound
	}
	return cloneGroup(s.groups[i]), nil
}

// CreateGroup assigns a fresh id and creation time, ensures the creator is a
// member, dedupes the member list and initializes an empty message sequence.
func (s *Store) CreateGroup(creatorID, name, description string, memberIDs []string) (models.Group, error) {
	var err error
	defer func() { record("group", "create", err) }()

	if strings.TrimSpace(name) == "" {
		err = ErrInvalidArgument
		return models.Group{}, err
	}

	// ensure creator present and dedupe members
	memberSet := map[string]struct{}{creatorID: {}}
	members := []string{creatorID}
	for _, id := range memberIDs {
		if _, ok := memberSet[id]; ok {
			continue
		}
		memberSet[id] = struct{}{}
		members = append(members, id)
	}

	group := models.Group{
		ID:          s.newID(),
		Name:        strings.TrimSpace(name),
		Description: description,
		Members:     members,
		CreatedAt:   s.now(),
	}

	s.mu.Lock()
	s.groups = append(s.groups, group)
	s.messages[group.ID] = []models.Message{}
	s.mu.Unlock()
	return cloneGroup(group), nil
}

// IsMember reports whether the user belongs to the group.
func (s *Store) IsMember(groupID, userID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.findGroup(groupID)
	if !ok {
		return false, ErrNotFound
	}
	for _, id := range s.groups[i].Members {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

// ListMessages returns the group's message sequence in append order.
func (s *Store) ListMessages(groupID string) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seq, ok := s.messages[groupID]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]models.Message(nil), seq...), nil
}

// SendMessage appends a message to the tail of the group's sequence. Content
// is stored verbatim; messages are never edited or reordered afterwards.
func (s *Store) SendMessage(groupID, userID, userName, content string) (models.Message, error) {
	var err error
	defer func() { record("message", "send", err) }()

	if strings.TrimSpace(content) == "" {
		err = ErrInvalidArgument
		return models.Message{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seq, ok := s.messages[groupID]
	if !ok {
		err = ErrNotFound
		return models.Message{}, err
	}

	msg := models.Message{
		ID:        s.newID(),
		GroupID:   groupID,
		UserID:    userID,
		UserName:  userName,
		Content:   content,
		Timestamp: s.now(),
	}

	s.messages[groupID] = append(seq, msg)
	return msg, nil
}

// findGroup returns the index of the group with the given id. Callers hold
// the lock.
func (s *Store) findGroup(id string) (int, bool) {
	for i := range s.groups {
		if s.groups[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

func cloneGroup(g models.Group) models.Group {
	g.Members = append([]string(nil), g.Members...)
	return g
}
