package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/homegym/homegym/core"
)

// NotRankedMessage is the plain (non-error) reply for Share lookups
// that cannot produce a rank.
const NotRankedMessage = "User not found or no ranking available."

// Ranking derives standings over every Account in the directory. Ranks
// are snapshots: they reflect the directory as of the last Recompute
// call, never live state.
type Ranking struct {
	membership *core.Membership
}

// Ensure Ranking implements the HTTP-facing port
var _ core.RankingHandler = (*Ranking)(nil)

func NewRanking(membership *core.Membership) *Ranking {
	return &Ranking{membership: membership}
}

// Recompute sorts all Accounts by total performed duration, descending,
// keeping registration order for exact ties, and assigns 1-based ranks.
// An Account whose duration equals the immediately preceding Account's
// copies that Account's rank, so a tie group shares the first member's
// position and the next distinct Account lands on a non-contiguous
// rank. Accounts that never logged an exercise end up with a nil rank
// even though their zero total takes part in the sort.
func (r *Ranking) Recompute() {
	accounts := r.membership.Accounts()

	sorted := make([]*core.Account, len(accounts))
	copy(sorted, accounts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalDuration() > sorted[j].TotalDuration()
	})

	for i, a := range sorted {
		if i > 0 && a.TotalDuration() == sorted[i-1].TotalDuration() {
			a.Rank = sorted[i-1].Rank
		} else {
			rank := i + 1
			a.Rank = &rank
		}
	}

	for _, a := range accounts {
		if len(a.Exercises) == 0 {
			a.Rank = nil
		}
	}
}

// Rank returns the Account's standing from the last Recompute. The
// Account must exist and its own session flag must be set; the rank is
// nil if it has never logged an exercise.
func (r *Ranking) Rank(username string) (*int, error) {
	account := r.membership.Find(username)
	if account == nil {
		return nil, fmt.Errorf("%w: %q", core.ErrAccountNotFound, username)
	}
	if !account.LoggedIn {
		return nil, fmt.Errorf("%w: ranking lookup", core.ErrLoginRequired)
	}
	return account.Rank, nil
}

// Share formats the Account's standing for sharing. A username with
// surrounding whitespace or an empty username is a validation error; an
// unregistered username yields NotRankedMessage rather than an error; a
// registered Account whose session flag is unset is an authorization
// error; a nil rank yields NotRankedMessage.
func (r *Ranking) Share(username string) (string, error) {
	if username != strings.TrimSpace(username) {
		return "", fmt.Errorf("%w: surrounding whitespace", core.ErrInvalidUsername)
	}
	if username == "" {
		return "", fmt.Errorf("%w: empty", core.ErrInvalidUsername)
	}

	account := r.membership.Find(username)
	if account == nil {
		return NotRankedMessage, nil
	}
	if !account.LoggedIn {
		return "", fmt.Errorf("%w: ranking share", core.ErrLoginRequired)
	}

	rank, err := r.Rank(username)
	if err != nil {
		return "", err
	}
	if rank == nil {
		return NotRankedMessage, nil
	}
	return fmt.Sprintf("User %s is ranked #%d in the HomeGym community!", username, *rank), nil
}
