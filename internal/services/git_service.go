package services

import (
	"context"
	"fmt"
	"sort"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport/http"

	"chatforge/internal/models"
)

// GitService reads branch metadata out of local clones so projects can keep
// their branch lists current, and clones project remotes using stored
// credentials.
type GitService struct {
	projects ProjectService
	keyring  *KeyringService
	ctx      context.Context
}

func NewGitService(projects ProjectService, keyring *KeyringService) *GitService {
	return &GitService{projects: projects, keyring: keyring}
}

func (g *GitService) Startup(ctx context.Context) {
	g.ctx = ctx
}

// Open an existing repo
func (g *GitService) Open(path string) (*git.Repository, error) {
	return git.PlainOpen(path)
}

// CloneProject clones the project's remote into path. A token stored for the
// remote is used as basic-auth credentials; without one the clone is
// anonymous.
func (g *GitService) CloneProject(projectID, path string) (*git.Repository, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: clone path cannot be empty", ErrValidation)
	}

	project, err := g.projects.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("%w: project %s", ErrNotFound, projectID)
	}
	if project.GitURL == nil || *project.GitURL == "" {
		return nil, fmt.Errorf("%w: project %s has no git url", ErrValidation, projectID)
	}

	opts := &git.CloneOptions{URL: *project.GitURL}
	if g.keyring != nil {
		if token, err := g.keyring.GetToken(*project.GitURL); err == nil && token != "" {
			opts.Auth = &http.BasicAuth{Username: "token", Password: token}
		}
	}

	repo, err := git.PlainClone(path, false, opts)
	if err != nil {
		return nil, fmt.Errorf("cloning %s: %w", *project.GitURL, err)
	}
	return repo, nil
}

// ListBranches returns all local branches and their last commit date for an opened repository.
func (g *GitService) ListBranches(repo *git.Repository) ([]models.Branch, error) {
	if repo == nil {
		return nil, fmt.Errorf("repo cannot be nil")
	}

	iter, err := repo.Branches()
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var branches []models.Branch
	if err := iter.ForEach(func(ref *plumbing.Reference) error {
		commit, cErr := repo.CommitObject(ref.Hash())
		if cErr != nil {
			return cErr
		}
		branches = append(branches, models.Branch{
			Name:           ref.Name().Short(),
			LastCommitDate: commit.Author.When,
		})
		return nil
	}); err != nil {
		return nil, err
	}

	// Alphabetical; callers can re-sort by recency
	sort.Slice(branches, func(i, j int) bool { return branches[i].Name < branches[j].Name })
	return branches, nil
}

// ListBranchesByPath opens the repo at repoPath and returns all local branches.
func (g *GitService) ListBranchesByPath(repoPath string) ([]models.Branch, error) {
	if repoPath == "" {
		return nil, fmt.Errorf("repository path cannot be empty")
	}
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at %s: %w", repoPath, err)
	}
	return g.ListBranches(repo)
}

// SyncBranches reads the branches of the repo at repoPath and stores them on
// the project, replacing the previous list.
func (g *GitService) SyncBranches(projectID, repoPath string) error {
	branches, err := g.ListBranchesByPath(repoPath)
	if err != nil {
		return err
	}
	return g.projects.ReplaceBranches(projectID, branches)
}
