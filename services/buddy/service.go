package buddy

import (
	"time"

	"campus-rewards/pkg/errutil"
	"campus-rewards/pkg/randsource"

	"go.uber.org/fx"
)

// Service is the placeholder campus buddy responder: a uniform pick over
// a fixed reply list. No language generation happens here.
type Service struct {
	rnd     randsource.Source
	replies []string
}

type ServiceParams struct {
	fx.In
	Rnd randsource.Source
}

func NewService(p ServiceParams) *Service {
	return &Service{
		rnd:     p.Rnd,
		replies: defaultReplies(),
	}
}

func defaultReplies() []string {
	return []string{
		"OMG that's totally valid! 💅✨",
		"Periodt! You're absolutely right about that! 🔥",
		"No cap, that's the tea! ☕",
		"Slay! You're doing amazing sweetie! 💁‍♀️",
		"That's giving... everything! 💯",
		"Literally same bestie! 😭",
		"You ate that up! 👏",
		"That's so fetch! 💖",
	}
}

// Reply is a canned response with the time it was produced.
type Reply struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Service) Respond(prompt string) (*Reply, error) {
	if prompt == "" {
		return nil, errutil.BadRequest("prompt is required")
	}

	return &Reply{
		Response:  s.replies[s.rnd.Intn(len(s.replies))],
		Timestamp: time.Now(),
	}, nil
}
