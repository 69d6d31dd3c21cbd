package services

import (
	"context"
	"fmt"
	"strconv"

	"chatforge/internal/repositories"
)

// nextChatID scans the chats collection and returns max numeric key + 1 as a
// string. Keys that do not parse as integers are skipped, so a stray
// non-numeric id can never win the max. An empty collection yields "1".
func nextChatID(ctx context.Context, repo repositories.ChatRepository) (string, error) {
	ids, err := repo.IDs(ctx)
	if err != nil {
		return "", err
	}
	max := 0
	for _, id := range ids {
		n, err := strconv.Atoi(id)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1), nil
}

// resolveURLID returns candidate if no chat uses it as a slug, otherwise the
// first free candidate-2, candidate-3, … in increasing order. The probe
// restarts from 2 on every call; fine at chat-history scale, linear in the
// number of collisions.
func resolveURLID(ctx context.Context, repo repositories.ChatRepository, candidate string) (string, error) {
	urlIDs, err := repo.URLIDs(ctx)
	if err != nil {
		return "", err
	}
	taken := make(map[string]struct{}, len(urlIDs))
	for _, u := range urlIDs {
		taken[u] = struct{}{}
	}
	if _, ok := taken[candidate]; !ok {
		return candidate, nil
	}
	for i := 2; ; i++ {
		probe := fmt.Sprintf("%s-%d", candidate, i)
		if _, ok := taken[probe]; !ok {
			return probe, nil
		}
	}
}
