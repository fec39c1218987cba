package seed

import (
	"fmt"
	"log"

	"microblog/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
	// SkipBcrypt stores plain passwords; dev fast mode only.
	SkipBcrypt bool
	// MaxDays bounds how far back seeded post timestamps spread.
	MaxDays int
	// BatchSize for bulk post inserts.
	BatchSize int
	// FollowDensity is the probability that any ordered user pair gets a
	// follow edge. Zero falls back to a sparse default.
	FollowDensity float64
	// CommentsPerPost and LikesPerPost cap random engagement per post.
	CommentsPerPost int
	LikesPerPost    int
}

// Seeder populates the database with a social mesh and engagement data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	opts    Options
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db, opts), opts: opts}
}

// ClearAll removes all seeded data in dependency order. It uses plain
// DELETEs so it works on both Postgres and SQLite.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, table := range []string{"comments", "likes", "follows", "posts", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}

// SeedSocialMesh creates count activated users and a randomized follow mesh
// between them. A few fixed accounts are always created first so developers
// have stable logins.
func (s *Seeder) SeedSocialMesh(count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)

	if count >= 3 {
		for _, name := range []string{"alice", "bob", "test"} {
			name := name
			user, err := s.factory.CreateUser(func(u *models.User) {
				u.Username = name
				u.Email = fmt.Sprintf("%s@example.com", name)
			})
			if err != nil {
				// Fixed accounts may already exist from a previous run.
				log.Printf("skipping fixed user %s: %v", name, err)
				continue
			}
			users = append(users, user)
		}
	}

	for i := len(users); i < count; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			log.Printf("failed to create user: %v", err)
			continue
		}
		users = append(users, user)

		if i%100 == 0 && i > 0 {
			log.Printf("Created %d users...", i)
		}
	}

	density := s.opts.FollowDensity
	if density <= 0 {
		density = 0.15
	}

	edges := 0
	for _, follower := range users {
		for _, following := range users {
			if follower.ID == following.ID {
				continue
			}
			if s.factory.rnd.Float64() >= density {
				continue
			}
			if err := s.factory.CreateFollow(follower, following); err != nil {
				return nil, fmt.Errorf("creating follow edge: %w", err)
			}
			edges++
		}
	}
	log.Printf("Created %d users and %d follow edges", len(users), edges)

	return users, nil
}

// SeedEngagement creates numPosts posts spread across users, with a share
// of reshares, plus random comments and likes. A small fraction of posts
// and comments is soft-deleted so feeds render the flagged states.
func (s *Seeder) SeedEngagement(users []*models.User, numPosts int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to seed posts for")
	}

	posts := make([]*models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		author := users[s.factory.rnd.Intn(len(users))]

		// ~15% reshares once there is something to reshare.
		if len(posts) > 0 && s.factory.rnd.Float32() < 0.15 {
			source := posts[s.factory.rnd.Intn(len(posts))]
			post, err := s.factory.CreateRetweet(author, source)
			if err != nil {
				return nil, fmt.Errorf("creating retweet: %w", err)
			}
			posts = append(posts, post)
			continue
		}

		post, err := s.factory.CreatePost(author)
		if err != nil {
			return nil, fmt.Errorf("creating post: %w", err)
		}
		posts = append(posts, post)

		if i%100 == 0 && i > 0 {
			log.Printf("Created %d posts...", i)
		}
	}

	maxComments := s.opts.CommentsPerPost
	if maxComments <= 0 {
		maxComments = 4
	}
	maxLikes := s.opts.LikesPerPost
	if maxLikes <= 0 {
		maxLikes = 6
	}
	if maxLikes > len(users) {
		maxLikes = len(users)
	}

	comments := 0
	likes := 0
	for _, post := range posts {
		for i := 0; i < s.factory.rnd.Intn(maxComments+1); i++ {
			commenter := users[s.factory.rnd.Intn(len(users))]
			c, err := s.factory.CreateComment(commenter, post)
			if err != nil {
				return nil, fmt.Errorf("creating comment: %w", err)
			}
			comments++

			// ~5% deleted comments, rendered flagged in feeds.
			if s.factory.rnd.Float32() < 0.05 {
				if err := s.db.Model(c).Update("deleted", true).Error; err != nil {
					return nil, err
				}
			}
		}

		// Distinct likers per post; one live like per (post, user).
		for _, idx := range s.factory.rnd.Perm(len(users))[:s.factory.rnd.Intn(maxLikes+1)] {
			if err := s.factory.CreateLike(users[idx], post); err != nil {
				return nil, fmt.Errorf("creating like: %w", err)
			}
			likes++
		}
	}

	// ~3% deleted posts so reshare sources and feeds exercise the flag.
	deleted := 0
	for _, post := range posts {
		if s.factory.rnd.Float32() < 0.03 {
			if err := s.db.Model(post).Update("deleted", true).Error; err != nil {
				return nil, err
			}
			deleted++
		}
	}

	log.Printf("Created %d posts (%d soft-deleted), %d comments, %d likes",
		len(posts), deleted, comments, likes)
	return posts, nil
}

// Run executes the full seeding pass per the seeder's options.
func (s *Seeder) Run() error {
	if s.opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	users, err := s.SeedSocialMesh(s.opts.NumUsers)
	if err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}

	if _, err := s.SeedEngagement(users, s.opts.NumPosts); err != nil {
		return fmt.Errorf("seeding engagement: %w", err)
	}
	return nil
}
