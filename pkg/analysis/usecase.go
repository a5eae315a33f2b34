package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/parun-tech/resume-checker/pkg/nlp"
)

const (
	defaultJobTitle      = "Untitled Job"
	defaultStoredMissing = 15
	defaultHistoryLimit  = 10
	maxHistoryLimit      = 200
)

// Submission is one resume-versus-job request.
type Submission struct {
	FileName       string
	MimeType       string
	Data           []byte
	JobTitle       string
	JobDescription string
}

// Report is returned to the caller after a successful comparison.
// MissingKeywords is complete; CheckID is empty if the check was not saved.
type Report struct {
	MatchResult
	FileName string `json:"fileName"`
	CheckID  string `json:"checkId,omitempty"`
}

// TextDecoder converts an uploaded document into plain text.
type TextDecoder interface {
	Decode(ctx context.Context, filename, mimeType string, data []byte) (string, error)
}

// UseCase covers checking a resume against a job description and reading history.
type UseCase interface {
	Analyze(ctx context.Context, s Submission) (Report, error)
	Get(ctx context.Context, id uuid.UUID) (Check, error)
	Recent(ctx context.Context, limit, offset int) ([]Check, error)
}

// Options tune the service; zero values fall back to defaults.
type Options struct {
	StoredMissing int
	HistoryLimit  int
}

type service struct {
	repo          Repository
	decoder       TextDecoder
	extractor     *nlp.Extractor
	storedMissing int
	historyLimit  int
	now           func() time.Time
}

func NewService(repo Repository, decoder TextDecoder, extractor *nlp.Extractor, opts Options) UseCase {
	if opts.StoredMissing <= 0 {
		opts.StoredMissing = defaultStoredMissing
	}
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = defaultHistoryLimit
	}
	return &service{
		repo:          repo,
		decoder:       decoder,
		extractor:     extractor,
		storedMissing: opts.StoredMissing,
		historyLimit:  opts.HistoryLimit,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Analyze(ctx context.Context, in Submission) (Report, error) {
	if len(in.Data) == 0 && strings.TrimSpace(in.FileName) == "" {
		return Report{}, ErrResumeMissing
	}
	text, err := s.decoder.Decode(ctx, in.FileName, in.MimeType, in.Data)
	if err != nil {
		return Report{}, err
	}

	resumeKW := s.extractor.Extract(text)
	jdKW := s.extractor.Extract(in.JobDescription)
	res, err := Compare(resumeKW, jdKW)
	if err != nil {
		return Report{}, err
	}

	rep := Report{MatchResult: res, FileName: in.FileName}

	title := strings.TrimSpace(in.JobTitle)
	if title == "" {
		title = defaultJobTitle
	}
	stored := res.MissingKeywords
	if len(stored) > s.storedMissing {
		stored = stored[:s.storedMissing]
	}
	check, err := s.repo.Create(ctx, Check{
		ID:              uuid.New(),
		JobTitle:        title,
		FileName:        in.FileName,
		Score:           res.Score,
		MissingKeywords: append([]string(nil), stored...),
		CreatedAt:       s.now(),
	})
	if err != nil {
		// the comparison itself succeeded; report it without a check id
		log.Warnf("save check for %q: %v", in.FileName, err)
		return rep, nil
	}
	rep.CheckID = check.ID.String()
	return rep, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Check, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Check{}, fmt.Errorf("get check %s: %w", id, err)
	}
	return c, nil
}

func (s *service) Recent(ctx context.Context, limit, offset int) ([]Check, error) {
	if limit <= 0 {
		limit = s.historyLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}
	items, err := s.repo.ListRecent(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list checks: %w", err)
	}
	if items == nil {
		items = []Check{}
	}
	return items, nil
}
