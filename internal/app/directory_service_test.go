package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"chatroom/internal/domain"
)

type mockUserRepo struct {
	createFn        func(ctx context.Context, user *domain.User) (*domain.User, error)
	getByNicknameFn func(ctx context.Context, nickname string) (*domain.User, error)
	listFn          func(ctx context.Context) ([]domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepo) GetByNickname(ctx context.Context, nickname string) (*domain.User, error) {
	if m.getByNicknameFn != nil {
		return m.getByNicknameFn(ctx, nickname)
	}
	return nil, nil
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func validForm() RegistrationForm {
	return RegistrationForm{
		Name:      "Ana Clara",
		Email:     "ana@example.com",
		BirthDate: "2000-01-01",
		Nickname:  "ana1",
		Password:  "secret1",
	}
}

func TestDirectoryService_Register_Success(t *testing.T) {
	ctx := context.Background()

	var stored *domain.User
	users := &mockUserRepo{
		createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			stored = user
			return user, nil
		},
	}

	svc := NewDirectoryService(users)
	user, err := svc.Register(ctx, validForm())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stored == nil {
		t.Fatal("expected user to be stored")
	}
	if user.Nickname != "ana1" {
		t.Errorf("expected nickname 'ana1', got %s", user.Nickname)
	}
	want := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	if !user.BirthDate.Equal(want) {
		t.Errorf("expected birth date %v, got %v", want, user.BirthDate)
	}
	if user.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestDirectoryService_Register_EmailOptional(t *testing.T) {
	ctx := context.Background()
	svc := NewDirectoryService(&mockUserRepo{})

	form := validForm()
	form.Email = ""
	if _, err := svc.Register(ctx, form); err != nil {
		t.Fatalf("expected no error without email, got %v", err)
	}
}

func TestDirectoryService_Register_Validation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*RegistrationForm)
		wantField string
		wantKind  FieldErrorKind
	}{
		{"missing name", func(f *RegistrationForm) { f.Name = "" }, "name", FieldMissing},
		{"missing birth date", func(f *RegistrationForm) { f.BirthDate = "" }, "birthDate", FieldMissing},
		{"missing nickname", func(f *RegistrationForm) { f.Nickname = "" }, "nickname", FieldMissing},
		{"missing password", func(f *RegistrationForm) { f.Password = "" }, "password", FieldMissing},
		{"name with digits", func(f *RegistrationForm) { f.Name = "Ana123" }, "name", FieldFormat},
		{"name with symbols", func(f *RegistrationForm) { f.Name = "Ana!" }, "name", FieldFormat},
		{"bad email", func(f *RegistrationForm) { f.Email = "not-an-email" }, "email", FieldFormat},
		{"email without tld", func(f *RegistrationForm) { f.Email = "ana@example" }, "email", FieldFormat},
		{"unparseable date", func(f *RegistrationForm) { f.BirthDate = "01/01/2000" }, "birthDate", FieldFormat},
		{"future date", func(f *RegistrationForm) {
			f.BirthDate = time.Now().AddDate(1, 0, 0).Format("2006-01-02")
		}, "birthDate", FieldFormat},
		{"nickname too short", func(f *RegistrationForm) { f.Nickname = "ab" }, "nickname", FieldRange},
		{"nickname too long", func(f *RegistrationForm) { f.Nickname = "abcdefghijklmnopqrstu" }, "nickname", FieldRange},
		{"password too short", func(f *RegistrationForm) { f.Password = "12345" }, "password", FieldRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			users := &mockUserRepo{
				createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
					t.Error("repository must not be touched on validation failure")
					return user, nil
				},
			}
			svc := NewDirectoryService(users)

			form := validForm()
			tc.mutate(&form)

			_, err := svc.Register(context.Background(), form)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if ve.Field != tc.wantField {
				t.Errorf("expected field %q, got %q", tc.wantField, ve.Field)
			}
			if ve.Kind != tc.wantKind {
				t.Errorf("expected kind %d, got %d", tc.wantKind, ve.Kind)
			}
		})
	}
}

func TestDirectoryService_Register_FirstViolationWins(t *testing.T) {
	// Several fields are invalid at once; the name check runs first.
	svc := NewDirectoryService(&mockUserRepo{})

	form := validForm()
	form.Name = "Ana123"
	form.Password = "123"

	_, err := svc.Register(context.Background(), form)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if ve.Field != "name" {
		t.Errorf("expected the name violation to be reported first, got %q", ve.Field)
	}
}

func TestDirectoryService_Register_DuplicateNickname(t *testing.T) {
	users := &mockUserRepo{
		createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			return nil, domain.ErrNicknameTaken
		},
	}
	svc := NewDirectoryService(users)

	_, err := svc.Register(context.Background(), validForm())
	if !errors.Is(err, domain.ErrNicknameTaken) {
		t.Errorf("expected ErrNicknameTaken, got %v", err)
	}
}

func TestDirectoryService_Authenticate(t *testing.T) {
	users := &mockUserRepo{
		getByNicknameFn: func(ctx context.Context, nickname string) (*domain.User, error) {
			if nickname != "ana1" {
				return nil, nil
			}
			return &domain.User{Nickname: "ana1", Password: "secret1"}, nil
		},
	}
	svc := NewDirectoryService(users)
	ctx := context.Background()

	user, err := svc.Authenticate(ctx, "ana1", "secret1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.Nickname != "ana1" {
		t.Errorf("expected nickname 'ana1', got %s", user.Nickname)
	}

	if _, err := svc.Authenticate(ctx, "ana1", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, "nobody", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestDirectoryService_Exists(t *testing.T) {
	users := &mockUserRepo{
		getByNicknameFn: func(ctx context.Context, nickname string) (*domain.User, error) {
			if nickname == "ana1" {
				return &domain.User{Nickname: "ana1"}, nil
			}
			return nil, nil
		},
	}
	svc := NewDirectoryService(users)
	ctx := context.Background()

	ok, err := svc.Exists(ctx, "ana1")
	if err != nil || !ok {
		t.Errorf("expected ana1 to exist, got ok=%v err=%v", ok, err)
	}
	ok, err = svc.Exists(ctx, "nobody")
	if err != nil || ok {
		t.Errorf("expected nobody to be absent, got ok=%v err=%v", ok, err)
	}
}
