// Package indexes reconciles the indexes every collection needs. EnsureAll
// runs at startup from the schema hook; each ensure call is idempotent, and
// any problem fails startup so a misconfigured database is caught early.
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// EnsureAll creates the index set for every collection.
func EnsureAll(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	var problems []string

	sets := []struct {
		coll   string
		models []mongo.IndexModel
	}{
		{"admins", []mongo.IndexModel{
			uniqueIndex("email_unique", bson.D{{Key: "email", Value: 1}}),
		}},
		{"home_stats", []mongo.IndexModel{
			uniqueIndex("key_unique", bson.D{{Key: "key", Value: 1}}),
		}},
		{"school_info", []mongo.IndexModel{
			uniqueIndex("key_unique", bson.D{{Key: "key", Value: 1}}),
		}},
		{"activities", []mongo.IndexModel{
			index("category_order", bson.D{{Key: "category", Value: 1}, {Key: "order", Value: 1}}),
		}},
		{"events", []mongo.IndexModel{
			index("date", bson.D{{Key: "date", Value: 1}}),
			index("highlight", bson.D{{Key: "highlight", Value: 1}}),
		}},
		{"jobs", []mongo.IndexModel{
			index("active_deadline", bson.D{{Key: "active", Value: 1}, {Key: "deadline", Value: 1}}),
		}},
		{"job_applications", []mongo.IndexModel{
			index("job_status", bson.D{{Key: "job_id", Value: 1}, {Key: "status", Value: 1}}),
		}},
		{"admissions", []mongo.IndexModel{
			index("status", bson.D{{Key: "status", Value: 1}}),
			index("student_name_ci", bson.D{{Key: "student_name_ci", Value: 1}}),
		}},
		{"contacts", []mongo.IndexModel{
			index("status", bson.D{{Key: "status", Value: 1}}),
			index("name_ci", bson.D{{Key: "name_ci", Value: 1}}),
		}},
	}

	for _, set := range sets {
		if err := ensureIndexSet(ctx, db.Collection(set.coll), set.models, log); err != nil {
			problems = append(problems, set.coll+": "+err.Error())
		}
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func index(name string, keys bson.D) mongo.IndexModel {
	return mongo.IndexModel{Keys: keys, Options: options.Index().SetName(name)}
}

func uniqueIndex(name string, keys bson.D) mongo.IndexModel {
	return mongo.IndexModel{Keys: keys, Options: options.Index().SetName(name).SetUnique(true)}
}

// ensureIndexSet creates each desired index. An index that already exists
// with the same keys (IndexOptionsConflict under a different name) is
// treated as satisfied rather than an error.
func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel, log *zap.Logger) error {
	for _, m := range models {
		name := ""
		if m.Options != nil && m.Options.Name != nil {
			name = *m.Options.Name
		}
		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			if strings.Contains(err.Error(), "IndexOptionsConflict") {
				log.Warn("index exists under a different name; keeping it",
					zap.String("collection", coll.Name()),
					zap.String("name", name))
				continue
			}
			return err
		}
		log.Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", name))
	}
	return nil
}
