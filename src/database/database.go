package database

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DBName = "EduSyncDB"

var (
	client     *mongo.Client
	once       sync.Once // ป้องกันการรัน ConnectMongoDB() ซ้ำ
	connectErr error

	UserCollection              *mongo.Collection
	StudentCollection           *mongo.Collection
	TeacherCollection           *mongo.Collection
	ParentCollection            *mongo.Collection
	ClassCollection             *mongo.Collection
	SectionCollection           *mongo.Collection
	SubjectCollection           *mongo.Collection
	DailyAttendanceCollection   *mongo.Collection
	MonthlyAttendanceCollection *mongo.Collection
	SubjectResultCollection     *mongo.Collection
	OverallResultCollection     *mongo.Collection
	GradeDefinitionCollection   *mongo.Collection
	HolidayCollection           *mongo.Collection
	AnnouncementCollection      *mongo.Collection
	LeaveCollection             *mongo.Collection
	FeePaymentCollection        *mongo.Collection
	ExamScheduleCollection      *mongo.Collection
	ReportCollection            *mongo.Collection
)

// ConnectMongoDB เชื่อมต่อกับ MongoDB แค่ครั้งเดียว
func ConnectMongoDB() error {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		initCollections()

		if err := ensureIndexes(); err != nil {
			log.Fatal("❌ Failed to create indexes:", err)
		}

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

func initCollections() {
	db := client.Database(DBName)
	UserCollection = db.Collection("users")
	StudentCollection = db.Collection("students")
	TeacherCollection = db.Collection("teachers")
	ParentCollection = db.Collection("parents")
	ClassCollection = db.Collection("classes")
	SectionCollection = db.Collection("sections")
	SubjectCollection = db.Collection("subjects")
	DailyAttendanceCollection = db.Collection("dailyAttendance")
	MonthlyAttendanceCollection = db.Collection("monthlyAttendance")
	SubjectResultCollection = db.Collection("subjectResults")
	OverallResultCollection = db.Collection("overallResults")
	GradeDefinitionCollection = db.Collection("gradeDefinitions")
	HolidayCollection = db.Collection("holidays")
	AnnouncementCollection = db.Collection("announcements")
	LeaveCollection = db.Collection("leaveApplications")
	FeePaymentCollection = db.Collection("feePayments")
	ExamScheduleCollection = db.Collection("examSchedules")
	ReportCollection = db.Collection("reports")
}

// ensureIndexes creates the unique indexes the aggregators rely on for
// duplicate rejection and upsert correctness under concurrent writers.
func ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	specs := []struct {
		coll *mongo.Collection
		keys bson.D
	}{
		{UserCollection, bson.D{{Key: "email", Value: 1}}},
		{DailyAttendanceCollection, bson.D{{Key: "studentId", Value: 1}, {Key: "date", Value: 1}}},
		{MonthlyAttendanceCollection, bson.D{{Key: "studentId", Value: 1}, {Key: "month", Value: 1}, {Key: "year", Value: 1}}},
		{SubjectResultCollection, bson.D{{Key: "studentId", Value: 1}, {Key: "subjectId", Value: 1}, {Key: "academicYear", Value: 1}, {Key: "term", Value: 1}}},
		{OverallResultCollection, bson.D{{Key: "studentId", Value: 1}, {Key: "academicYear", Value: 1}, {Key: "term", Value: 1}}},
	}

	for _, s := range specs {
		_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: s.keys, Options: unique})
		if err != nil {
			return err
		}
	}
	return nil
}

// GetCollection รับ collection จาก MongoDB
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
