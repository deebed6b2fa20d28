package services

import (
	"errors"
	"testing"
	"time"

	"greenshelf/internal/models"
	"greenshelf/internal/store"
)

func newAdminEnv(t *testing.T) (*store.Store, *AdminService) {
	t.Helper()
	s := store.New(store.NewMemoryKV())
	return s, NewAdminService(s, NewRankingService(s))
}

// 非管理员调用一律拒绝，服务层不信任路由门禁
func TestAdminAuthorization(t *testing.T) {
	s, svc := newAdminEnv(t)
	regular := mustUser(t, s, "user1") // 普通用户

	before := s.Products.Len()
	_, err := svc.AddProduct(regular, ProductInput{Category: models.CategoryFruits, Name: "Pears"})
	var authErr *AuthorizationError
	if !errors.As(err, &authErr) {
		t.Fatalf("AddProduct by non-admin: got %v, want AuthorizationError", err)
	}
	if s.Products.Len() != before {
		t.Error("rejected AddProduct still mutated the collection")
	}

	if err := svc.DeleteProduct(regular, "Fruits_Apples"); !errors.As(err, &authErr) {
		t.Errorf("DeleteProduct by non-admin: got %v, want AuthorizationError", err)
	}
	if _, err := svc.UpdateProductStatus(regular, "Fruits_Apples", models.StatusOrganic, true); !errors.As(err, &authErr) {
		t.Errorf("UpdateProductStatus by non-admin: got %v, want AuthorizationError", err)
	}
	if err := svc.DeleteNotice(nil, "notice1"); err == nil {
		t.Error("nil user should be rejected")
	}
}

// 新商品插到集合头部，状态标签按 set 塌缩重复项
func TestAddProductFrontAndStatusSet(t *testing.T) {
	s, svc := newAdminEnv(t)
	admin := mustUser(t, s, "user2")

	p, err := svc.AddProduct(admin, ProductInput{
		Category: models.CategoryFruits,
		Name:     "Golden Kiwis",
		Status:   []models.ProductStatus{models.StatusOrganic, models.StatusOrganic, models.StatusNewProduct},
	})
	if err != nil {
		t.Fatalf("AddProduct failed: %v", err)
	}
	if got := s.Products.All()[0].ID; got != p.ID {
		t.Errorf("new product not at front, head is %s", got)
	}
	if len(p.Status) != 2 {
		t.Errorf("duplicate status tags not collapsed: %v", p.Status)
	}
	if p.Upvotes != 0 || p.Downvotes != 0 || len(p.Reviews) != 0 {
		t.Error("new product should start with zero votes and no reviews")
	}

	if _, err := svc.AddProduct(admin, ProductInput{Category: "Snacks", Name: "Chips"}); err == nil {
		t.Error("unknown category accepted")
	}
	if _, err := svc.AddProduct(admin, ProductInput{Category: models.CategoryFruits, Name: "  "}); err == nil {
		t.Error("blank name accepted")
	}
}

// 状态开关幂等：重复添加、重复移除都不报错不重复
func TestUpdateProductStatusIdempotent(t *testing.T) {
	s, svc := newAdminEnv(t)
	admin := mustUser(t, s, "user2")

	for i := 0; i < 3; i++ {
		if _, err := svc.UpdateProductStatus(admin, "Fruits_Apples", models.StatusLimitedSupply, true); err != nil {
			t.Fatalf("add round %d: %v", i, err)
		}
	}
	p, _ := s.Products.Get("Fruits_Apples")
	count := 0
	for _, st := range p.Status {
		if st == models.StatusLimitedSupply {
			count++
		}
	}
	if count != 1 {
		t.Errorf("status appears %d times, want 1", count)
	}

	if _, err := svc.UpdateProductStatus(admin, "Fruits_Apples", models.StatusLimitedSupply, false); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := svc.UpdateProductStatus(admin, "Fruits_Apples", models.StatusLimitedSupply, false); err != nil {
		t.Fatalf("second remove should be a no-op, got: %v", err)
	}
	p, _ = s.Products.Get("Fruits_Apples")
	if p.HasStatus(models.StatusLimitedSupply) {
		t.Error("status still present after removal")
	}

	var nf *NotFoundError
	if _, err := svc.UpdateProductStatus(admin, "ghost", models.StatusNewProduct, true); !errors.As(err, &nf) {
		t.Errorf("missing product: got %v, want NotFoundError", err)
	}
}

// 批量操作跳过不存在的 id，返回实际改动数
func TestBulkUpdateProductStatus(t *testing.T) {
	s, svc := newAdminEnv(t)
	admin := mustUser(t, s, "user2")

	ids := []string{"Fruits_Apples", "no-such-product", "Fruits_Bananas"}
	touched, err := svc.BulkUpdateProductStatus(admin, ids, models.StatusOnSale, "add")
	if err != nil {
		t.Fatalf("bulk add failed: %v", err)
	}
	if touched != 2 {
		t.Errorf("touched = %d, want 2", touched)
	}
	for _, id := range []string{"Fruits_Apples", "Fruits_Bananas"} {
		p, _ := s.Products.Get(id)
		if !p.HasStatus(models.StatusOnSale) {
			t.Errorf("%s missing status after bulk add", id)
		}
	}

	if _, err := svc.BulkUpdateProductStatus(admin, ids, models.StatusOnSale, "toggle"); err == nil {
		t.Error("invalid action accepted")
	}

	touched, err = svc.BulkUpdateProductStatus(admin, ids, models.StatusOnSale, "remove")
	if err != nil || touched != 2 {
		t.Fatalf("bulk remove: touched=%d err=%v", touched, err)
	}
}

// 活动插入后整表保持日期升序
func TestAddEventKeepsDateOrder(t *testing.T) {
	s, svc := newAdminEnv(t)
	admin := mustUser(t, s, "user2")

	mid := time.Now().AddDate(0, 0, 9)
	if _, err := svc.AddEvent(admin, EventInput{Title: "Canning Workshop", Date: mid, Time: "2:00 PM", Location: "Kitchen"}); err != nil {
		t.Fatalf("AddEvent failed: %v", err)
	}

	events := s.Events.All()
	for i := 1; i < len(events); i++ {
		if events[i].Date.Before(events[i-1].Date) {
			t.Fatalf("events out of order at %d: %v after %v", i, events[i].Date, events[i-1].Date)
		}
	}

	if _, err := svc.AddEvent(admin, EventInput{Title: "No Date"}); err == nil {
		t.Error("zero date accepted")
	}
}

func TestNoticeLifecycle(t *testing.T) {
	s, svc := newAdminEnv(t)
	admin := mustUser(t, s, "user2")

	n, err := svc.AddNotice(admin, NoticeInput{Title: "Holiday Hours", Message: "Closed Monday", Type: models.NoticeTypeInfo})
	if err != nil {
		t.Fatalf("AddNotice failed: %v", err)
	}
	if s.Notices.All()[0].ID != n.ID {
		t.Error("new notice not at front")
	}

	if _, err := svc.AddNotice(admin, NoticeInput{Title: "Bad", Type: "urgent"}); err == nil {
		t.Error("unknown notice type accepted")
	}

	updated, err := svc.UpdateNotice(admin, n.ID, NoticeInput{Title: "Holiday Hours", Message: "Closed Tuesday", Type: models.NoticeTypeWarning})
	if err != nil {
		t.Fatalf("UpdateNotice failed: %v", err)
	}
	if updated.Message != "Closed Tuesday" || updated.Type != models.NoticeTypeWarning {
		t.Errorf("update not applied: %+v", updated)
	}

	if err := svc.DeleteNotice(admin, n.ID); err != nil {
		t.Fatalf("DeleteNotice failed: %v", err)
	}
	var nf *NotFoundError
	if err := svc.DeleteNotice(admin, n.ID); !errors.As(err, &nf) {
		t.Errorf("second delete: got %v, want NotFoundError", err)
	}
}

// 删除商品后排行榜里不再出现它
func TestDeleteProductRefreshesRanking(t *testing.T) {
	s, svc := newAdminEnv(t)
	admin := mustUser(t, s, "user2")
	ranking := svc.ranking

	before := ranking.Top()
	found := false
	for _, rp := range before {
		if rp.ID == "Fruits_Apples" {
			found = true
		}
	}
	if !found {
		t.Fatal("seed apples expected on leaderboard")
	}

	if err := svc.DeleteProduct(admin, "Fruits_Apples"); err != nil {
		t.Fatalf("DeleteProduct failed: %v", err)
	}
	if _, ok := s.Products.Get("Fruits_Apples"); ok {
		t.Error("product still present after delete")
	}
	for _, rp := range ranking.Top() {
		if rp.ID == "Fruits_Apples" {
			t.Error("deleted product still ranked")
		}
	}
}
