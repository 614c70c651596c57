// Package mongodb реализует слой хранения поверх MongoDB.
//
// Storage создаётся один раз при старте и передаётся в обработчики явно.
// Каждый метод — один запрос к коллекции users или subscriptions;
// результаты драйвера (InsertOneResult, UpdateResult, DeleteResult)
// возвращаются как есть, потому что входят в контракт ответов сервиса.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/magabrotheeeer/gym-membership/internal/config"
	"github.com/magabrotheeeer/gym-membership/internal/models"
)

// ErrUserNotFound возвращается, когда пользователь с таким email не найден.
var ErrUserNotFound = errors.New("user not found")

// Storage держит подключение к MongoDB и ссылки на коллекции.
type Storage struct {
	client        *mongo.Client
	users         *mongo.Collection
	subscriptions *mongo.Collection
}

// New подключается к MongoDB, проверяет соединение и создаёт
// уникальный индекс по email пользователей.
func New(ctx context.Context, cfg config.Mongo) (*Storage, error) {
	const op = "storage.mongodb.New"

	opts := options.Client().
		ApplyURI(connectionURI(cfg)).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db := client.Database(cfg.Database)
	s := &Storage{
		client:        client,
		users:         db.Collection("users"),
		subscriptions: db.Collection("subscriptions"),
	}

	if err := s.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

func connectionURI(cfg config.Mongo) string {
	if cfg.URI != "" {
		return cfg.URI
	}
	if cfg.Username != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s/?retryWrites=true&w=majority",
			url.QueryEscape(cfg.Username), url.QueryEscape(cfg.Password), cfg.Host)
	}
	return "mongodb://" + cfg.Host
}

func (s *Storage) ensureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Close закрывает подключение к MongoDB.
func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// InsertUser вставляет запись пользователя.
func (s *Storage) InsertUser(ctx context.Context, user models.User) (*mongo.InsertOneResult, error) {
	const op = "storage.mongodb.InsertUser"
	res, err := s.users.InsertOne(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// FindUserByEmail ищет пользователя по email.
// Возвращает ErrUserNotFound, если записи нет.
func (s *Storage) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.mongodb.FindUserByEmail"
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &user, nil
}

// ListUsers возвращает все записи пользователей.
func (s *Storage) ListUsers(ctx context.Context) ([]models.User, error) {
	const op = "storage.mongodb.ListUsers"
	cursor, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	users := make([]models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return users, nil
}

// InsertSubscription вставляет документ подписки.
func (s *Storage) InsertSubscription(ctx context.Context, doc bson.M) (*mongo.InsertOneResult, error) {
	const op = "storage.mongodb.InsertSubscription"
	res, err := s.subscriptions.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// ListSubscriptions возвращает все документы подписок.
func (s *Storage) ListSubscriptions(ctx context.Context) ([]bson.M, error) {
	const op = "storage.mongodb.ListSubscriptions"
	cursor, err := s.subscriptions.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	docs := make([]bson.M, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return docs, nil
}

// FindSubscriptionByID ищет документ подписки по идентификатору.
// Возвращает nil без ошибки, если документа нет: маршрут отдаёт null.
func (s *Storage) FindSubscriptionByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	const op = "storage.mongodb.FindSubscriptionByID"
	var doc bson.M
	err := s.subscriptions.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return doc, nil
}

// UpsertSubscription заменяет поля документа подписки переданными
// значениями, создавая документ при его отсутствии.
func (s *Storage) UpsertSubscription(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error) {
	const op = "storage.mongodb.UpsertSubscription"
	res, err := s.subscriptions.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// DeleteSubscription удаляет документ подписки по идентификатору.
// Повторное удаление не ошибка: DeletedCount будет равен нулю.
func (s *Storage) DeleteSubscription(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	const op = "storage.mongodb.DeleteSubscription"
	res, err := s.subscriptions.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}
