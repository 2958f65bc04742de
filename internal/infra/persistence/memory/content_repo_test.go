package memory

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/mundo-tango/mundo-tango-app/pkg/domain/model"
	"github.com/mundo-tango/mundo-tango-app/pkg/idgen"
)

func TestMain(m *testing.M) {
	if err := idgen.InitSqidsEncoder(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestContentRepoCreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewContentRepo()

	item := &model.ContentItem{
		Type:     model.ContentTypePost,
		AuthorID: "user-1",
		Body:     "hola mundo",
	}
	id, err := repo.Create(ctx, item)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if id == "" {
		t.Fatal("Create() 应返回非空公共 ID")
	}

	got, err := repo.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got == nil || got.Body != "hola mundo" {
		t.Errorf("FindByID() = %+v", got)
	}

	// 不存在的 ID 返回 nil, nil
	missing, err := repo.FindByID(ctx, "no-such-id")
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if missing != nil {
		t.Errorf("不存在的内容应返回 nil, got %+v", missing)
	}
}

func TestContentRepoReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewContentRepo()

	id, _ := repo.Create(ctx, &model.ContentItem{
		Type:     model.ContentTypePost,
		AuthorID: "user-1",
		Body:     "original",
		Moderation: model.ModerationRecord{
			Status: model.ModStatusPending,
			Flags:  []string{},
		},
	})

	first, _ := repo.FindByID(ctx, id)
	first.Body = "mutado"
	first.Moderation.Flags = append(first.Moderation.Flags, "X")

	second, _ := repo.FindByID(ctx, id)
	if second.Body != "original" {
		t.Error("对返回值的修改不应影响存储内容")
	}
	if len(second.Moderation.Flags) != 0 {
		t.Errorf("切片字段应深拷贝, flags = %v", second.Moderation.Flags)
	}
}

func TestContentRepoUpdateMissing(t *testing.T) {
	repo := NewContentRepo()

	ok, err := repo.Update(context.Background(), &model.ContentItem{ID: "no-such-id"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if ok {
		t.Error("更新不存在的内容应返回 false")
	}
}

func TestContentRepoFindByAuthor(t *testing.T) {
	ctx := context.Background()
	repo := NewContentRepo()

	now := time.Now()
	repo.Create(ctx, &model.ContentItem{AuthorID: "user-1", Status: model.PubStatusDraft, UpdatedAt: now})
	repo.Create(ctx, &model.ContentItem{AuthorID: "user-1", Status: model.PubStatusPublished, UpdatedAt: now.Add(time.Minute)})
	repo.Create(ctx, &model.ContentItem{AuthorID: "user-2", Status: model.PubStatusPublished, UpdatedAt: now})

	all, err := repo.FindByAuthor(ctx, "user-1", nil)
	if err != nil {
		t.Fatalf("FindByAuthor() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("作者内容数 = %d, want 2", len(all))
	}
	// 按更新时间倒序
	if !all[0].UpdatedAt.After(all[1].UpdatedAt) {
		t.Error("结果应按更新时间倒序")
	}

	published := model.PubStatusPublished
	filtered, _ := repo.FindByAuthor(ctx, "user-1", &published)
	if len(filtered) != 1 || filtered[0].Status != model.PubStatusPublished {
		t.Errorf("按状态过滤结果 = %+v", filtered)
	}
}

func TestContentRepoFindForModeration(t *testing.T) {
	ctx := context.Background()
	repo := NewContentRepo()

	repo.Create(ctx, &model.ContentItem{
		AuthorID:   "user-1",
		Moderation: model.ModerationRecord{Status: model.ModStatusApproved, Score: 100},
	})
	lowID, _ := repo.Create(ctx, &model.ContentItem{
		AuthorID:   "user-1",
		Moderation: model.ModerationRecord{Status: model.ModStatusFlagged, Score: 20, Flags: []string{"A", "B"}},
	})
	highID, _ := repo.Create(ctx, &model.ContentItem{
		AuthorID:   "user-1",
		Moderation: model.ModerationRecord{Status: model.ModStatusFlagged, Score: 90, Flags: []string{"A"}},
	})

	queue, err := repo.FindForModeration(ctx, 0)
	if err != nil {
		t.Fatalf("FindForModeration() error = %v", err)
	}
	if len(queue) != 2 {
		t.Fatalf("待审核内容数 = %d, want 2", len(queue))
	}
	// 标记多、评分低的排在前面
	if queue[0].ID != lowID || queue[1].ID != highID {
		t.Errorf("排序 = [%s %s], want [%s %s]", queue[0].ID, queue[1].ID, lowID, highID)
	}

	limited, _ := repo.FindForModeration(ctx, 1)
	if len(limited) != 1 || limited[0].ID != lowID {
		t.Errorf("limit=1 应只返回优先级最高的一条")
	}
}

func TestContentRepoDeleteExpired(t *testing.T) {
	ctx := context.Background()
	repo := NewContentRepo()

	now := time.Now()
	oldID, _ := repo.Create(ctx, &model.ContentItem{
		AuthorID:  "user-1",
		Status:    model.PubStatusDeleted,
		UpdatedAt: now.AddDate(0, -2, 0),
	})
	repo.Create(ctx, &model.ContentItem{
		AuthorID:  "user-1",
		Status:    model.PubStatusDeleted,
		UpdatedAt: now,
	})
	repo.Create(ctx, &model.ContentItem{
		AuthorID:  "user-1",
		Status:    model.PubStatusPublished,
		UpdatedAt: now.AddDate(0, -2, 0),
	})

	deleted, err := repo.DeleteExpired(ctx, now.AddDate(0, -1, 0))
	if err != nil {
		t.Fatalf("DeleteExpired() error = %v", err)
	}
	if len(deleted) != 1 || deleted[0] != oldID {
		t.Errorf("deleted = %v, want [%s]", deleted, oldID)
	}

	if got, _ := repo.FindByID(ctx, oldID); got != nil {
		t.Error("过期内容应已被物理删除")
	}
	all, _ := repo.FindAll(ctx)
	if len(all) != 2 {
		t.Errorf("剩余内容数 = %d, want 2", len(all))
	}
}

func TestContentVersionRepoAppend(t *testing.T) {
	ctx := context.Background()
	repo := NewContentVersionRepo()

	for i := 1; i <= 3; i++ {
		v, err := repo.Append(ctx, "c1", &model.ContentVersion{Body: "body", CreatedBy: "user-1"})
		if err != nil {
			t.Fatalf("Append() error = %v", err)
		}
		if v.Version != i {
			t.Errorf("版本号 = %d, want %d", v.Version, i)
		}
	}

	// 不同内容的版本序列互不影响
	v, _ := repo.Append(ctx, "c2", &model.ContentVersion{Body: "otro"})
	if v.Version != 1 {
		t.Errorf("新内容的首版本 = %d, want 1", v.Version)
	}

	list, err := repo.ListByContent(ctx, "c1")
	if err != nil {
		t.Fatalf("ListByContent() error = %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("版本数 = %d, want 3", len(list))
	}
	for i, got := range list {
		if got.Version != i+1 {
			t.Errorf("版本序列不连续: [%d] = v%d", i, got.Version)
		}
		if got.ContentID != "c1" {
			t.Errorf("ContentID = %s, want c1", got.ContentID)
		}
	}

	if err := repo.DeleteByContent(ctx, "c1"); err != nil {
		t.Fatalf("DeleteByContent() error = %v", err)
	}
	if list, _ := repo.ListByContent(ctx, "c1"); len(list) != 0 {
		t.Errorf("删除后版本数 = %d, want 0", len(list))
	}
}
