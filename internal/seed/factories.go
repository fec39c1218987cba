// Package seed creates development and demo data: users, the follow mesh
// between them, and posts with comments, likes and reshares.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"microblog/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and by tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rnd  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // weak randomness is fine for seeding
	return &Factory{db: db, opts: opts, rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser constructs and persists a sample user. All seeded users are
// activated and share the password "password123". Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username:       gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:          gofakeit.Email(),
		Image:          fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		ActivationCode: uuid.NewString(),
		Activated:      true,
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildPost constructs a post struct without persisting it, useful for
// batching. CreatedAt is spread over the recent past so seeded feeds page
// realistically.
func (f *Factory) BuildPost(user *models.User, overrides ...func(*models.Post)) *models.Post {
	post := &models.Post{
		UserID: user.ID,
		Body:   gofakeit.Sentence(f.rnd.Intn(18) + 3),
	}

	if f.rnd.Float32() < 0.4 {
		post.PostImage = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
	}

	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rnd.Intn(maxDays)
	hoursBack := f.rnd.Intn(24)
	minsBack := f.rnd.Intn(60)
	post.CreatedAt = time.Now().
		Add(-time.Duration(daysBack)*24*time.Hour -
			time.Duration(hoursBack)*time.Hour -
			time.Duration(minsBack)*time.Minute)

	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreatePost constructs and persists a sample post for the given user.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := f.BuildPost(user, overrides...)
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreatePostsBatch persists multiple posts in chunks.
func (f *Factory) CreatePostsBatch(posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	batch := f.opts.BatchSize
	if batch <= 0 {
		batch = 100
	}
	return f.db.CreateInBatches(&posts, batch).Error
}

// CreateRetweet persists a reshare of source authored by user. The body may
// be empty; a reshare does not need its own text.
func (f *Factory) CreateRetweet(user *models.User, source *models.Post) (*models.Post, error) {
	post := f.BuildPost(user, func(p *models.Post) {
		p.RetweetedPostID = &source.ID
		if f.rnd.Float32() < 0.5 {
			p.Body = ""
		}
		// A reshare always postdates its source.
		if p.CreatedAt.Before(source.CreatedAt) {
			p.CreatedAt = source.CreatedAt.Add(time.Duration(f.rnd.Intn(120)+1) * time.Minute)
		}
	})
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment constructs and persists a sample comment on the provided
// post authored by the provided user.
func (f *Factory) CreateComment(user *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		PostID: post.ID,
		UserID: user.ID,
		Body:   gofakeit.Sentence(8),
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like from user on post.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	like := &models.Like{
		PostID: post.ID,
		UserID: user.ID,
	}
	return f.db.Create(like).Error
}

// CreateFollow persists a follow edge from follower to following.
func (f *Factory) CreateFollow(follower, following *models.User) error {
	edge := &models.Follow{
		FollowerID:  follower.ID,
		FollowingID: following.ID,
	}
	return f.db.Create(edge).Error
}
