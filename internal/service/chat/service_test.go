package chat

import (
	"database/sql"
	"errors"
	"os"
	"testing"

	"gorm.io/gorm"

	"school_hub_server/internal/dao/mysql/repository"
	myredis "school_hub_server/internal/dao/redis"
	"school_hub_server/internal/dto/request"
	"school_hub_server/internal/model"
	"school_hub_server/pkg/errorx"
)

func TestMain(m *testing.M) {
	// Cache invalidation runs through the worker pool; give it a buffer so
	// tests without a live Redis never execute cache calls inline.
	myredis.InitCacheWorker(1, 64)
	os.Exit(m.Run())
}

type stubSchoolRepo struct{}

func (stubSchoolRepo) FindByUuid(uuid string) (*model.School, error) {
	return &model.School{Uuid: uuid}, nil
}
func (stubSchoolRepo) GetSchoolList(page, pageSize int) ([]model.School, int64, error) {
	return nil, 0, nil
}
func (stubSchoolRepo) Create(school *model.School) error    { return nil }
func (stubSchoolRepo) Update(school *model.School) error    { return nil }
func (stubSchoolRepo) SoftDeleteByUuid(uuid string) error   { return nil }

type stubUserRepo struct{}

func (stubUserRepo) FindByUuid(uuid string) (*model.User, error) {
	return &model.User{Uuid: uuid}, nil
}
func (stubUserRepo) FindByEmail(email string) (*model.User, error) {
	return nil, errorx.New(errorx.CodeNotFound, "no such user")
}
func (stubUserRepo) FindByUuids(uuids []string) ([]model.User, error) {
	users := make([]model.User, 0, len(uuids))
	for _, uuid := range uuids {
		users = append(users, model.User{Uuid: uuid})
	}
	return users, nil
}
func (stubUserRepo) GetUserList(page, pageSize int) ([]model.User, int64, error) {
	return nil, 0, nil
}
func (stubUserRepo) Create(user *model.User) error                      { return nil }
func (stubUserRepo) Update(user *model.User) error                      { return nil }
func (stubUserRepo) UpdateActiveRole(uuid, activeRole string) error     { return nil }
func (stubUserRepo) UpdateStatusByUuids(uuids []string, s int8) error   { return nil }
func (stubUserRepo) SoftDeleteByUuids(uuids []string) error             { return nil }

// stubChatRepo keeps one existing private chat and records pair-key lookups.
type stubChatRepo struct {
	existing    *model.Chat
	createErr   error
	lookedUp    []string
	created     *model.Chat
}

func (r *stubChatRepo) FindByUuid(uuid string) (*model.Chat, error) {
	return nil, errorx.New(errorx.CodeNotFound, "no such chat")
}
func (r *stubChatRepo) FindByPairKey(pairKey string) (*model.Chat, error) {
	r.lookedUp = append(r.lookedUp, pairKey)
	if r.existing != nil && r.existing.PairKey.String == pairKey {
		return r.existing, nil
	}
	return nil, errorx.New(errorx.CodeNotFound, "no private chat for this pair")
}
func (r *stubChatRepo) FindByUserUuid(userUuid string) ([]model.Chat, error) { return nil, nil }
func (r *stubChatRepo) Create(chat *model.Chat) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = chat
	return nil
}
func (r *stubChatRepo) UpdateHasAvatar(uuid string, hasAvatar bool) error { return nil }
func (r *stubChatRepo) TouchLastMessage(uuid string) error                { return nil }
func (r *stubChatRepo) SoftDeleteByUuid(uuid string) error                { return nil }

type stubParticipantRepo struct {
	batch []model.ChatParticipant
}

func (r *stubParticipantRepo) FindByChatUuid(chatUuid string) ([]model.ChatParticipant, error) {
	return nil, nil
}
func (r *stubParticipantRepo) FindByChatAndUser(chatUuid, userUuid string) (*model.ChatParticipant, error) {
	return nil, errorx.New(errorx.CodeNotFound, "not a participant")
}
func (r *stubParticipantRepo) CountByChatUuid(chatUuid string) (int64, error) { return 0, nil }
func (r *stubParticipantRepo) Create(p *model.ChatParticipant) error          { return nil }
func (r *stubParticipantRepo) CreateBatch(ps []model.ChatParticipant) error {
	r.batch = ps
	return nil
}
func (r *stubParticipantRepo) DeleteByChatAndUser(chatUuid, userUuid string) error { return nil }
func (r *stubParticipantRepo) DeleteByChatUuid(chatUuid string) error              { return nil }

type stubAvatarRepo struct{}

func (stubAvatarRepo) FindByChatUuid(chatUuid string) (*model.ChatAvatar, error) {
	return nil, errorx.New(errorx.CodeNotFound, "no avatar")
}
func (stubAvatarRepo) Upsert(avatar *model.ChatAvatar) error  { return nil }
func (stubAvatarRepo) DeleteByChatUuid(chatUuid string) error { return nil }

// indexedChatRepo models the chat table closely enough to exercise the
// pair-key unique index: the index spans dismissed rows, while the scoped
// queries only see live ones. Dismissing releases the pair key, matching
// the real repository.
type indexedChatRepo struct {
	live []*model.Chat
	dead []*model.Chat
}

func (r *indexedChatRepo) FindByUuid(uuid string) (*model.Chat, error) {
	for _, c := range r.live {
		if c.Uuid == uuid {
			return c, nil
		}
	}
	return nil, errorx.New(errorx.CodeNotFound, "no such chat")
}
func (r *indexedChatRepo) FindByPairKey(pairKey string) (*model.Chat, error) {
	for _, c := range r.live {
		if c.PairKey.Valid && c.PairKey.String == pairKey {
			return c, nil
		}
	}
	return nil, errorx.New(errorx.CodeNotFound, "no private chat for this pair")
}
func (r *indexedChatRepo) FindByUserUuid(userUuid string) ([]model.Chat, error) { return nil, nil }
func (r *indexedChatRepo) Create(chat *model.Chat) error {
	if chat.PairKey.Valid {
		for _, c := range append(r.live, r.dead...) {
			if c.PairKey.Valid && c.PairKey.String == chat.PairKey.String {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	cp := *chat
	r.live = append(r.live, &cp)
	return nil
}
func (r *indexedChatRepo) UpdateHasAvatar(uuid string, hasAvatar bool) error { return nil }
func (r *indexedChatRepo) TouchLastMessage(uuid string) error                { return nil }
func (r *indexedChatRepo) SoftDeleteByUuid(uuid string) error {
	kept := r.live[:0]
	for _, c := range r.live {
		if c.Uuid == uuid {
			c.PairKey = sql.NullString{}
			r.dead = append(r.dead, c)
			continue
		}
		kept = append(kept, c)
	}
	r.live = kept
	return nil
}

func newTestChatService(chatRepo repository.ChatRepository) (*chatService, *stubParticipantRepo) {
	participantRepo := &stubParticipantRepo{}
	repos := &repository.Repositories{
		User:        stubUserRepo{},
		School:      stubSchoolRepo{},
		Chat:        chatRepo,
		Participant: participantRepo,
		Avatar:      stubAvatarRepo{},
	}
	return NewChatService(repos), participantRepo
}

func TestFindPrivateChatRejectsSelf(t *testing.T) {
	svc, _ := newTestChatService(&stubChatRepo{})
	_, err := svc.FindPrivateChatBetweenUsers("U1", "U1")
	var codeErr *errorx.CodeError
	if !errors.As(err, &codeErr) || codeErr.Code != errorx.CodeInvalidParam {
		t.Fatalf("expected invalid-param for a self lookup, got %v", err)
	}
}

func TestFindPrivateChatIsSymmetric(t *testing.T) {
	chatRepo := &stubChatRepo{}
	svc, _ := newTestChatService(chatRepo)

	_, _ = svc.FindPrivateChatBetweenUsers("U2", "U1")
	_, _ = svc.FindPrivateChatBetweenUsers("U1", "U2")

	if len(chatRepo.lookedUp) != 2 || chatRepo.lookedUp[0] != chatRepo.lookedUp[1] {
		t.Fatalf("pair-key lookups differ by argument order: %v", chatRepo.lookedUp)
	}
}

func TestCreatePrivateChatWithOnlySelf(t *testing.T) {
	svc, _ := newTestChatService(&stubChatRepo{})
	_, err := svc.CreateChat("U1", request.CreateChatRequest{
		Type:           model.ChatTypePrivate,
		ParticipantIds: []string{"U1"},
		SchoolId:       "S1",
	})
	var codeErr *errorx.CodeError
	if !errors.As(err, &codeErr) || codeErr.Code != errorx.CodeInvalidParam {
		t.Fatalf("expected invalid-param for a self chat, got %v", err)
	}
}

func TestCreatePrivateChatWithTooManyParticipants(t *testing.T) {
	svc, _ := newTestChatService(&stubChatRepo{})
	_, err := svc.CreateChat("U1", request.CreateChatRequest{
		Type:           model.ChatTypePrivate,
		ParticipantIds: []string{"U2", "U3"},
		SchoolId:       "S1",
	})
	if err == nil {
		t.Fatal("expected an error for a three-party private chat")
	}
}

func TestCreatePrivateChatSetsCanonicalPairKey(t *testing.T) {
	chatRepo := &stubChatRepo{}
	svc, participantRepo := newTestChatService(chatRepo)

	rsp, err := svc.CreateChat("U2", request.CreateChatRequest{
		Type:           model.ChatTypePrivate,
		ParticipantIds: []string{"U1"},
		SchoolId:       "S1",
	})
	if err != nil {
		t.Fatalf("CreateChat: %v", err)
	}
	if chatRepo.created == nil || chatRepo.created.PairKey.String != model.PairKey("U1", "U2") {
		t.Fatalf("stored pair key = %+v, want canonical form", chatRepo.created.PairKey)
	}
	if len(participantRepo.batch) != 2 {
		t.Fatalf("expected 2 participants, got %d", len(participantRepo.batch))
	}
	if !participantRepo.batch[0].IsAdmin || participantRepo.batch[0].UserUuid != "U2" {
		t.Fatalf("creator should be the admin participant: %+v", participantRepo.batch[0])
	}
	if rsp.ChatId == "" {
		t.Fatal("respond carries no chat id")
	}
}

func TestCreatePrivateChatDuplicateAnswersExistingId(t *testing.T) {
	existing := &model.Chat{Uuid: "C_EXISTING", Type: model.ChatTypePrivate}
	existing.PairKey.String = model.PairKey("U1", "U2")
	existing.PairKey.Valid = true
	chatRepo := &stubChatRepo{
		existing:  existing,
		createErr: gorm.ErrDuplicatedKey,
	}
	svc, _ := newTestChatService(chatRepo)

	_, err := svc.CreateChat("U2", request.CreateChatRequest{
		Type:           model.ChatTypePrivate,
		ParticipantIds: []string{"U1"},
		SchoolId:       "S1",
	})
	var dupErr *DuplicateChatError
	if !errors.As(err, &dupErr) {
		t.Fatalf("expected a DuplicateChatError, got %v", err)
	}
	if dupErr.ExistingChatId != "C_EXISTING" {
		t.Fatalf("existing chat id = %q", dupErr.ExistingChatId)
	}
}

func TestDismissedPrivateChatCanBeRecreated(t *testing.T) {
	chatRepo := &indexedChatRepo{}
	svc, _ := newTestChatService(chatRepo)

	req := request.CreateChatRequest{
		Type:           model.ChatTypePrivate,
		ParticipantIds: []string{"U1"},
		SchoolId:       "S1",
	}
	first, err := svc.CreateChat("U2", req)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	if err := svc.DismissChat(first.ChatId, "U2"); err != nil {
		t.Fatalf("dismiss: %v", err)
	}
	second, err := svc.CreateChat("U2", req)
	if err != nil {
		t.Fatalf("re-create after dismiss: %v", err)
	}
	if second.ChatId == first.ChatId {
		t.Fatal("re-creation returned the dismissed chat")
	}
	if got, err := svc.FindPrivateChatBetweenUsers("U1", "U2"); err != nil {
		t.Fatalf("find after re-create: %v", err)
	} else if got.ChatId != second.ChatId {
		t.Fatalf("pair resolves to %q, want the new chat %q", got.ChatId, second.ChatId)
	}
}

func TestCreateGroupChatsNeverCollide(t *testing.T) {
	chatRepo := &stubChatRepo{}
	svc, _ := newTestChatService(chatRepo)

	req := request.CreateChatRequest{
		Name:           "homework club",
		Type:           model.ChatTypeGroup,
		ParticipantIds: []string{"U1", "U3"},
		SchoolId:       "S1",
	}
	first, err := svc.CreateChat("U2", req)
	if err != nil {
		t.Fatalf("first group create: %v", err)
	}
	second, err := svc.CreateChat("U2", req)
	if err != nil {
		t.Fatalf("second group create: %v", err)
	}
	if first.ChatId == second.ChatId {
		t.Fatal("two group creations yielded the same chat")
	}
	if chatRepo.created.PairKey.Valid {
		t.Fatal("group chat must not carry a pair key")
	}
}
