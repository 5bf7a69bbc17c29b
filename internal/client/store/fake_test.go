package store

import (
	"context"

	"github.com/dmitrijs2005/bandmate/internal/client/api"
	"github.com/dmitrijs2005/bandmate/internal/client/models"
)

// fakeClient implements api.Client for store unit tests. Results and
// errors are injected per method; arguments of the last call are recorded
// for assertions.
type fakeClient struct {
	CloseErr error

	Token string

	RegisterResp *api.AuthResponse
	RegisterErr  error
	LastRegister api.RegisterRequest

	LoginResp     *api.AuthResponse
	LoginErr      error
	LastLoginUser string
	LastLoginPass string

	ListUsersRet []models.User
	ListUsersErr error
	ListCalls    int

	SearchRet     []models.User
	SearchErr     error
	SearchCalls   int
	LastFilters   api.SearchFilters
	ByCityRet     []models.User
	ByCityErr     error
	LastCity      string

	SendReqRet       *models.Connection
	SendReqErr       error
	LastRecipient    string
	RespondRet       *models.Connection
	RespondErr       error
	LastRespondID    string
	LastRespondState models.ConnectionStatus
	BandmatesRet     []models.Connection
	BandmatesErr     error
	PendingRet       []models.Connection
	PendingErr       error
	SentRet          []models.Connection
	SentErr          error

	MessagesRetMap map[string][]models.Message
	MessagesErr    error
	LastPeer       string
	SendMsgRet     *models.Message
	SendMsgErr     error
	LastMsgPeer    string
	LastMsgText    string

	FeedRet        []models.Post
	FeedErr        error
	CreateRet      *models.Post
	CreateErr      error
	CreateCalls    int
	LastContent    string
	LastImage      string
	LikeRet        int
	LikeErr        error
	LastLikedPost  string
	CommentRet     *models.Comment
	CommentErr     error
	EditRet        *models.Post
	EditErr        error
	DeleteErr      error
	LastDeleted    string

	ProfileRet    *api.ProfileResponse
	ProfileErr    error
	LastProfileID string
	UpdateRet     *models.User
	UpdateErr     error
	LastUpdate    api.ProfileUpdate
}

func (f *fakeClient) Close() error          { return f.CloseErr }
func (f *fakeClient) SetToken(token string) { f.Token = token }

func (f *fakeClient) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	f.LastRegister = req
	return f.RegisterResp, f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	f.LastLoginUser = email
	f.LastLoginPass = password
	return f.LoginResp, f.LoginErr
}

func (f *fakeClient) ListUsers(ctx context.Context) ([]models.User, error) {
	f.ListCalls++
	return f.ListUsersRet, f.ListUsersErr
}

func (f *fakeClient) SearchUsers(ctx context.Context, filters api.SearchFilters) ([]models.User, error) {
	f.SearchCalls++
	f.LastFilters = filters
	return f.SearchRet, f.SearchErr
}

func (f *fakeClient) UsersByCity(ctx context.Context, city string) ([]models.User, error) {
	f.LastCity = city
	return f.ByCityRet, f.ByCityErr
}

func (f *fakeClient) SendConnectionRequest(ctx context.Context, recipientID string) (*models.Connection, error) {
	f.LastRecipient = recipientID
	return f.SendReqRet, f.SendReqErr
}

func (f *fakeClient) RespondToRequest(ctx context.Context, id string, status models.ConnectionStatus) (*models.Connection, error) {
	f.LastRespondID = id
	f.LastRespondState = status
	return f.RespondRet, f.RespondErr
}

func (f *fakeClient) Bandmates(ctx context.Context) ([]models.Connection, error) {
	return f.BandmatesRet, f.BandmatesErr
}

func (f *fakeClient) PendingRequests(ctx context.Context) ([]models.Connection, error) {
	return f.PendingRet, f.PendingErr
}

func (f *fakeClient) SentRequests(ctx context.Context) ([]models.Connection, error) {
	return f.SentRet, f.SentErr
}

func (f *fakeClient) Messages(ctx context.Context, peerID string) ([]models.Message, error) {
	f.LastPeer = peerID
	return f.MessagesRetMap[peerID], f.MessagesErr
}

func (f *fakeClient) SendMessage(ctx context.Context, peerID, content string) (*models.Message, error) {
	f.LastMsgPeer = peerID
	f.LastMsgText = content
	return f.SendMsgRet, f.SendMsgErr
}

func (f *fakeClient) Feed(ctx context.Context) ([]models.Post, error) {
	return f.FeedRet, f.FeedErr
}

func (f *fakeClient) CreatePost(ctx context.Context, content, image string) (*models.Post, error) {
	f.CreateCalls++
	f.LastContent = content
	f.LastImage = image
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) LikePost(ctx context.Context, postID string) (int, error) {
	f.LastLikedPost = postID
	return f.LikeRet, f.LikeErr
}

func (f *fakeClient) AddComment(ctx context.Context, postID, text string) (*models.Comment, error) {
	return f.CommentRet, f.CommentErr
}

func (f *fakeClient) EditPost(ctx context.Context, postID, content, image string) (*models.Post, error) {
	return f.EditRet, f.EditErr
}

func (f *fakeClient) DeletePost(ctx context.Context, postID string) error {
	f.LastDeleted = postID
	return f.DeleteErr
}

func (f *fakeClient) Profile(ctx context.Context, userID string) (*api.ProfileResponse, error) {
	f.LastProfileID = userID
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, update api.ProfileUpdate) (*models.User, error) {
	f.LastUpdate = update
	return f.UpdateRet, f.UpdateErr
}

// fakeRepo is an in-memory session.Repository.
type fakeRepo struct {
	data   map[string][]byte
	SetErr error
	GetErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{data: map[string][]byte{}}
}

func (r *fakeRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	return r.data[key], nil
}

func (r *fakeRepo) Set(ctx context.Context, key string, value []byte) error {
	if r.SetErr != nil {
		return r.SetErr
	}
	r.data[key] = value
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, key string) error {
	delete(r.data, key)
	return nil
}

func (r *fakeRepo) Clear(ctx context.Context) error {
	r.data = map[string][]byte{}
	return nil
}
