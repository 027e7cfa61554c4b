package db

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"neurolearn/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var MongoClient *mongo.Client
var MongoDatabase *mongo.Database

var (
	UsersCollection            *mongo.Collection
	ProfilesCollection         *mongo.Collection
	LearningEventsCollection   *mongo.Collection
	GeneratedContentCollection *mongo.Collection
)

// extractDBName parses the database name from the URI, defaulting to "neurolearn"
func extractDBName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "neurolearn"
	}
	if u.Path != "" && u.Path != "/" {
		return u.Path[1:]
	}
	return "neurolearn"
}

// ConnectMongoDB establishes a connection to MongoDB using the provided URI
func ConnectMongoDB(uri string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Verify connection with a ping
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	MongoClient = client
	dbName := extractDBName(uri)
	log.Printf("Using database: %s", dbName)

	MongoDatabase = client.Database(dbName)
	UsersCollection = MongoDatabase.Collection("users")
	ProfilesCollection = MongoDatabase.Collection("student_profiles")
	LearningEventsCollection = MongoDatabase.Collection("learning_events")
	GeneratedContentCollection = MongoDatabase.Collection("generated_content")
	return nil
}

// FindUserByEmail looks up a user account by email.
func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := UsersCollection.FindOne(context.Background(), bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new user account.
func CreateUser(user models.User) (string, error) {
	res, err := UsersCollection.InsertOne(context.Background(), user)
	if err != nil {
		return "", err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id.Hex(), nil
}

// SaveLearningEvent records one telemetry event for a student.
func SaveLearningEvent(event models.LearningEvent) error {
	_, err := LearningEventsCollection.InsertOne(context.Background(), event)
	if err != nil {
		log.Printf("Error saving learning event: %v", err)
		return err
	}
	return nil
}

// ListStudentEvents returns a student's events in chronological order.
func ListStudentEvents(studentID string) ([]models.LearningEvent, error) {
	opts := options.Find().SetSort(bson.M{"timestamp": 1})
	cursor, err := LearningEventsCollection.Find(context.Background(), bson.M{"studentId": studentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.Background())

	var events []models.LearningEvent
	if err := cursor.All(context.Background(), &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetProfile fetches a student's profile, or nil when none exists.
func GetProfile(userID string) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	err := ProfilesCollection.FindOne(context.Background(), bson.M{"userId": userID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// UpsertProfile creates or replaces a student's profile.
func UpsertProfile(profile models.StudentProfile) error {
	profile.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := ProfilesCollection.ReplaceOne(
		context.Background(),
		bson.M{"userId": profile.UserID},
		profile,
		opts,
	)
	return err
}

// SaveGeneratedContent archives one successful generation.
func SaveGeneratedContent(content models.GeneratedContent) error {
	_, err := GeneratedContentCollection.InsertOne(context.Background(), content)
	if err != nil {
		log.Printf("Error saving generated content: %v", err)
		return err
	}
	return nil
}
