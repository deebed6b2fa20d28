package services

import (
	"encoding/json"
	"errors"
	"math/rand"
	"testing"

	"greenshelf/internal/models"
	"greenshelf/internal/store"
)

// newSeededEnv 种子数据环境（Crisp Red Apples 等）
func newSeededEnv(t *testing.T) (*store.Store, *InteractionService, *RankingService) {
	t.Helper()
	s := store.New(store.NewMemoryKV())
	r := NewRankingService(s)
	return s, NewInteractionService(s, r), r
}

// newCleanEnv 全零计数的干净环境，用于聚合一致性校验
func newCleanEnv(t *testing.T, productIDs, userIDs []string) (*store.Store, *InteractionService) {
	t.Helper()
	kv := store.NewMemoryKV()

	var products []*models.Product
	for _, id := range productIDs {
		products = append(products, &models.Product{ID: id, Category: models.CategoryFruits, Name: id})
	}
	var users []*models.User
	for _, id := range userIDs {
		users = append(users, &models.User{ID: id, Name: id})
	}
	setJSON(t, kv, store.KeyProducts, products)
	setJSON(t, kv, store.KeyUsers, users)

	s := store.New(kv)
	return s, NewInteractionService(s, NewRankingService(s))
}

func setJSON(t *testing.T, kv store.KV, key string, v any) {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal %s: %v", key, err)
	}
	if err := kv.Set(key, string(raw)); err != nil {
		t.Fatalf("set %s: %v", key, err)
	}
}

// 首次点赞加一票，换方向时旧票回退
func TestVoteScenarioCrispRedApples(t *testing.T) {
	s, svc, _ := newSeededEnv(t)

	p, err := svc.Vote("Fruits_Apples", "user3", models.ThumbsUp)
	if err != nil {
		t.Fatalf("Vote(up) failed: %v", err)
	}
	if p.Upvotes != 26 || p.Downvotes != 2 {
		t.Errorf("after up: got %d/%d, want 26/2", p.Upvotes, p.Downvotes)
	}
	user, _ := s.Users.Get("user3")
	if st := user.ProductInteractions["Fruits_Apples"].ThumbsState; st != models.ThumbsUp {
		t.Errorf("thumbs state = %s, want up", st)
	}

	p, err = svc.Vote("Fruits_Apples", "user3", models.ThumbsDown)
	if err != nil {
		t.Fatalf("Vote(down) failed: %v", err)
	}
	if p.Upvotes != 25 || p.Downvotes != 3 {
		t.Errorf("after switch: got %d/%d, want 25/3", p.Upvotes, p.Downvotes)
	}
	if st := user.ProductInteractions["Fruits_Apples"].ThumbsState; st != models.ThumbsDown {
		t.Errorf("thumbs state = %s, want down", st)
	}
}

// 连续两次同方向投票回到原点：计数复原，状态回到 none
func TestVoteToggleIdempotence(t *testing.T) {
	s, svc, _ := newSeededEnv(t)

	p, _ := s.Products.Get("Fruits_Bananas")
	up, down := p.Upvotes, p.Downvotes

	for _, dir := range []models.ThumbsState{models.ThumbsUp, models.ThumbsDown} {
		if _, err := svc.Vote("Fruits_Bananas", "user3", dir); err != nil {
			t.Fatalf("first vote failed: %v", err)
		}
		if _, err := svc.Vote("Fruits_Bananas", "user3", dir); err != nil {
			t.Fatalf("second vote failed: %v", err)
		}
		if p.Upvotes != up || p.Downvotes != down {
			t.Errorf("dir %s: counters %d/%d, want %d/%d", dir, p.Upvotes, p.Downvotes, up, down)
		}
		user, _ := s.Users.Get("user3")
		if st := user.ProductInteractions["Fruits_Bananas"].ThumbsState; st != models.ThumbsNone {
			t.Errorf("dir %s: thumbs state = %s, want none", dir, st)
		}
	}
}

// 随机投票序列回放后，聚合计数必须与逐用户状态吻合
func TestVoteCounterConsistency(t *testing.T) {
	productIDs := []string{"p1", "p2", "p3"}
	userIDs := []string{"u1", "u2", "u3", "u4"}
	s, svc := newCleanEnv(t, productIDs, userIDs)

	rng := rand.New(rand.NewSource(42))
	dirs := []models.ThumbsState{models.ThumbsUp, models.ThumbsDown}
	for i := 0; i < 500; i++ {
		pid := productIDs[rng.Intn(len(productIDs))]
		uid := userIDs[rng.Intn(len(userIDs))]
		if _, err := svc.Vote(pid, uid, dirs[rng.Intn(2)]); err != nil {
			t.Fatalf("vote %d failed: %v", i, err)
		}
	}

	for _, pid := range productIDs {
		p, _ := s.Products.Get(pid)
		ups, downs := 0, 0
		for _, uid := range userIDs {
			u, _ := s.Users.Get(uid)
			it, ok := u.ProductInteractions[pid]
			if !ok {
				continue
			}
			switch it.ThumbsState {
			case models.ThumbsUp:
				ups++
			case models.ThumbsDown:
				downs++
			}
		}
		if p.Upvotes != ups || p.Downvotes != downs {
			t.Errorf("%s: aggregate %d/%d, per-user %d/%d", pid, p.Upvotes, p.Downvotes, ups, downs)
		}
	}
}

func TestVoteRejectsUnknownTargets(t *testing.T) {
	_, svc, _ := newSeededEnv(t)

	var nf *NotFoundError
	if _, err := svc.Vote("Fruits_Apples", "ghost", models.ThumbsUp); !errors.As(err, &nf) {
		t.Errorf("unknown user: got %v, want NotFoundError", err)
	}
	if _, err := svc.Vote("no-such-product", "user1", models.ThumbsUp); !errors.As(err, &nf) {
		t.Errorf("unknown product: got %v, want NotFoundError", err)
	}

	var ve *ValidationError
	if _, err := svc.Vote("Fruits_Apples", "user1", models.ThumbsNone); !errors.As(err, &ve) {
		t.Errorf("direction none: got %v, want ValidationError", err)
	}
}

func TestToggleFavorite(t *testing.T) {
	s, svc, _ := newSeededEnv(t)

	// 首次触达创建默认互动记录
	it, err := svc.ToggleFavoriteProduct("user3", "Dairy_Milk")
	if err != nil {
		t.Fatalf("ToggleFavoriteProduct failed: %v", err)
	}
	if !it.IsFavorited || it.ThumbsState != models.ThumbsNone {
		t.Errorf("unexpected interaction after first toggle: %+v", it)
	}

	it, _ = svc.ToggleFavoriteProduct("user3", "Dairy_Milk")
	if it.IsFavorited {
		t.Error("second toggle should clear the flag")
	}

	// 收藏不影响投票状态
	user, _ := s.Users.Get("user1")
	prev := user.ProductInteractions["Fruits_Apples"].ThumbsState
	svc.ToggleFavoriteProduct("user1", "Fruits_Apples")
	if user.ProductInteractions["Fruits_Apples"].ThumbsState != prev {
		t.Error("favorite toggle must not touch thumbs state")
	}

	aIt, err := svc.ToggleFavoriteArticle("user3", "article1")
	if err != nil || !aIt.IsFavorited {
		t.Errorf("article favorite failed: %v %+v", err, aIt)
	}
}
