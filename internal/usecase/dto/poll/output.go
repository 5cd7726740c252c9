package polldto

import "github.com/brigatacurvasud/bcs-service/internal/domain"

type PollWithTally struct {
	Poll  *domain.Poll
	Tally *domain.PollTally
}
