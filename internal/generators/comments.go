package generators

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aditya-h-09/asana-rl-seed-data/internal/models"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/repository"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/sampling"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/utils"
)

var commentTemplates = []string{
	"Started working on this task.",
	"Making good progress. Should be done by EOD.",
	"Blocked by {blocker}. Need help from team.",
	"Completed initial implementation. Ready for review.",
	"Updated the approach based on feedback.",
	"Added test cases for edge conditions.",
	"This is taking longer than expected due to {reason}.",
	"Quick update: {status}",
	"Coordinating with {team} team on this.",
	"Question: {question}",
	"FYI @{person} - this relates to your work on {related}.",
	"Pushing this to next sprint due to {reason}.",
	"Moving forward with Option A after team discussion.",
	"Documentation updated in the wiki.",
	"Deployed to staging for testing.",
	"Found an issue with {component}. Investigating.",
	"Code review complete. Looks good to merge.",
	"Need design input on {aspect}.",
	"Performance looks good after optimization.",
	"Following up on this from standup discussion.",
}

var commentFillers = map[string][]string{
	"{blocker}": {
		"dependency not ready", "waiting on API access",
		"blocked by infrastructure issue", "needs approval", "waiting on design",
	},
	"{reason}": {
		"complexity", "scope creep", "technical debt",
		"unexpected edge cases", "dependency delays",
	},
	"{status}": {
		"50% complete", "almost done", "in final review",
		"waiting for feedback", "needs testing",
	},
	"{question}": {
		"should we include error handling for X?",
		"what's the expected behavior for edge case Y?",
		"is this the right approach?", "need clarification on requirements",
	},
	"{component}": {"API", "UI", "database", "service"},
	"{aspect}":    {"layout", "interaction", "styling", "flow"},
	"{team}":      {"product", "engineering", "design"},
	"{related}":   {"authentication", "API integration", "dashboard updates", "database migration"},
	"{person}":    {"Sarah", "John", "Alex", "Maria"},
}

// commenterPoolSize caps how many project-team members beyond the creator
// and assignee are candidate commenters for a task.
const commenterPoolSize = 5

// CommentGenerator produces comments on top-level tasks, timed within
// each task's lifetime.
type CommentGenerator struct {
	repo repository.Repository
	rng  *sampling.Sampler
}

// NewCommentGenerator creates a new CommentGenerator
func NewCommentGenerator(repo repository.Repository, rng *sampling.Sampler) *CommentGenerator {
	return &CommentGenerator{repo: repo, rng: rng}
}

// Generate creates and persists comments for the committed top-level
// tasks, returning the number written.
func (g *CommentGenerator) Generate() (int, error) {
	tasks, err := g.repo.TopLevelTasks()
	if err != nil {
		return 0, fmt.Errorf("failed to load tasks: %w", err)
	}

	// Active team members per project, cached across tasks sharing one.
	memberCache := make(map[string][]models.User)
	now := time.Now()

	var comments []models.Comment
	for _, task := range tasks {
		numComments := g.commentCount()
		if numComments == 0 {
			continue
		}

		members, ok := memberCache[task.ProjectID]
		if !ok {
			members, err = g.repo.ActiveProjectMembers(task.ProjectID, 10)
			if err != nil {
				return 0, fmt.Errorf("failed to load project members: %w", err)
			}
			memberCache[task.ProjectID] = members
		}

		candidates := g.candidateCommenters(task, members)
		if len(candidates) == 0 {
			continue
		}

		comments = append(comments, g.buildComments(task, candidates, numComments, now)...)
	}

	err = g.repo.Transaction(func(tx repository.Repository) error {
		return tx.CreateComments(comments)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to persist comments: %w", err)
	}

	return len(comments), nil
}

// commentCount draws from the fixed discrete distribution: 40% of tasks
// get no comments, 35% get 1-2, 20% get 3-5, 5% get 6-10.
func (g *CommentGenerator) commentCount() int {
	switch draw := g.rng.Float64(); {
	case draw < 0.40:
		return 0
	case draw < 0.75:
		return g.rng.IntBetween(1, 2)
	case draw < 0.95:
		return g.rng.IntBetween(3, 5)
	default:
		return g.rng.IntBetween(6, 10)
	}
}

func (g *CommentGenerator) candidateCommenters(task models.Task, members []models.User) []string {
	seen := map[string]bool{task.CreatedBy: true}
	candidates := []string{task.CreatedBy}

	if task.AssigneeID != nil && !seen[*task.AssigneeID] {
		seen[*task.AssigneeID] = true
		candidates = append(candidates, *task.AssigneeID)
	}

	for i, member := range members {
		if i >= commenterPoolSize {
			break
		}
		if !seen[member.ID] {
			seen[member.ID] = true
			candidates = append(candidates, member.ID)
		}
	}
	return candidates
}

// buildComments spreads n comments over the task's lifetime: comment i of
// n lands at the (i+1)/(n+1) fraction of the span between creation and
// completion-or-now, with a business-hours time of day.
func (g *CommentGenerator) buildComments(task models.Task, candidates []string, n int, now time.Time) []models.Comment {
	taskEnd := now
	if task.CompletedAt != nil {
		taskEnd = *task.CompletedAt
	}
	spanDays := int(taskEnd.Sub(task.CreatedAt).Hours() / 24)

	// The day fraction advances with the ordinal but the business-hours
	// jitter does not, so the drawn times are sorted before assignment to
	// keep creation time non-decreasing in the ordinal.
	times := make([]time.Time, n)
	for i := range times {
		progress := float64(i+1) / float64(n+1)
		commentDay := int(float64(spanDays) * progress)

		commentTime := task.CreatedAt.AddDate(0, 0, commentDay).
			Add(time.Duration(g.rng.IntBetween(9, 18))*time.Hour +
				time.Duration(g.rng.IntBetween(0, 59))*time.Minute)
		if commentTime.After(taskEnd) {
			commentTime = taskEnd.Add(-time.Duration(g.rng.IntBetween(1, 48)) * time.Hour)
			if commentTime.Before(task.CreatedAt) {
				commentTime = task.CreatedAt
			}
		}
		times[i] = commentTime
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	comments := make([]models.Comment, 0, n)
	for i := 0; i < n; i++ {
		commentTime := times[i]

		var commenter string
		if task.AssigneeID != nil && g.rng.Chance(0.60) {
			commenter = *task.AssigneeID
		} else {
			commenter = sampling.Choice(g.rng, candidates)
		}

		comments = append(comments, models.Comment{
			ID:        utils.NewID(),
			TaskID:    task.ID,
			UserID:    commenter,
			Content:   g.commentContent(),
			CreatedAt: commentTime,
		})
	}
	return comments
}

func (g *CommentGenerator) commentContent() string {
	content := sampling.Choice(g.rng, commentTemplates)
	for placeholder, pool := range commentFillers {
		if strings.Contains(content, placeholder) {
			content = strings.ReplaceAll(content, placeholder, sampling.Choice(g.rng, pool))
		}
	}
	return content
}
