package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/nyuchitech/EducatorEval/internal/config"
	"github.com/nyuchitech/EducatorEval/internal/model"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDatabase)
	now := time.Now()

	framework := defaultFramework(now)
	if _, err := db.Collection("frameworks").InsertOne(ctx, framework); err != nil {
		log.Fatalf("Failed to insert framework: %v", err)
	}
	log.Printf("Seeded framework %q", framework.Name)

	for _, t := range sampleTeachers(now) {
		if _, err := db.Collection("teachers").InsertOne(ctx, t); err != nil {
			log.Fatalf("Failed to insert teacher %s: %v", t.Name, err)
		}
	}
	log.Println("Seeded sample teachers")

	hash, err := bcrypt.GenerateFromPassword([]byte("admin1234"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	admin := model.User{
		ID:           "admin",
		Name:         "District Admin",
		Email:        "admin@district.edu",
		Role:         model.RoleAdmin,
		Department:   "Central Office",
		Permissions:  []string{"*"},
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := db.Collection("users").InsertOne(ctx, admin); err != nil {
		log.Fatalf("Failed to insert admin user: %v", err)
	}
	log.Printf("Seeded admin user %s (password admin1234)", admin.Email)
}

func defaultFramework(now time.Time) model.Framework {
	lookFors := []model.Question{
		{
			Key:                 "lookfor1",
			Text:                "The learning target is clearly communicated, standards-based, and relevant to students. Students can explain what they are learning and why.",
			Tags:                []string{"learning-targets", "clarity", "standards"},
			HelpText:            "Look for visible learning targets and student understanding of purpose",
			FrameworkAlignments: []string{"5-daily-assessment", "crp-curriculum", "tripod-clarify"},
		},
		{
			Key:                 "lookfor2",
			Text:                "Teacher fosters a respectful, inclusive, and identity-affirming environment where all students feel a sense of belonging.",
			Tags:                []string{"belonging", "inclusive", "identity-affirming"},
			HelpText:            "Observe inclusive language, cultural affirmation, and belonging practices",
			FrameworkAlignments: []string{"crp-general", "casel-social-awareness", "panorama", "tripod-care"},
		},
		{
			Key:                 "lookfor3",
			Text:                "Teacher checks for understanding and adjusts instruction in response to student needs.",
			Tags:                []string{"formative-assessment", "responsive-teaching", "differentiation"},
			HelpText:            "Look for checks for understanding and instructional adjustments",
			FrameworkAlignments: []string{"5-daily-assessment", "tripod-clarify", "inclusive-practices"},
		},
		{
			Key:                 "lookfor4",
			Text:                "Teacher uses questioning strategies that increase cognitive demand and promote student thinking.",
			Tags:                []string{"questioning", "cognitive-demand", "critical-thinking"},
			HelpText:            "Observe higher-order questions and student thinking promotion",
			FrameworkAlignments: []string{"5-daily-assessment", "crp-high-expectations", "tripod-challenge"},
		},
		{
			Key:                 "lookfor5",
			Text:                "Students are engaged in meaningful, collaborative learning experiences with clear roles and expectations.",
			Tags:                []string{"engagement", "collaboration", "student-roles"},
			HelpText:            "Look for purposeful collaboration with defined student roles",
			FrameworkAlignments: []string{"crp-general", "casel-relationship-skills", "tripod-captivate", "inclusive-practices"},
		},
		{
			Key:                 "lookfor6",
			Text:                "Teacher demonstrates cultural competence and integrates students' backgrounds and experiences into the lesson.",
			Tags:                []string{"cultural-competence", "student-backgrounds", "culturally-responsive"},
			HelpText:            "Observe integration of student cultures and experiences into instruction",
			FrameworkAlignments: []string{"crp-learning-partnerships", "panorama", "casel-social-awareness", "tripod-confer"},
		},
		{
			Key:                 "lookfor7",
			Text:                "Teacher actively monitors and supports students during group and independent work.",
			Tags:                []string{"monitoring", "support", "independent-work"},
			HelpText:            "Look for active circulation and targeted student support",
			FrameworkAlignments: []string{"5-daily-assessment", "tripod-control", "inclusive-practices"},
		},
		{
			Key:                 "lookfor8",
			Text:                "Students have opportunities to reflect on and consolidate their learning during and after the lesson.",
			Tags:                []string{"reflection", "consolidation", "metacognition"},
			HelpText:            "Observe student reflection and learning consolidation opportunities",
			FrameworkAlignments: []string{"5-daily-assessment", "casel-self-management", "tripod-consolidate"},
		},
		{
			Key:                 "lookfor9",
			Text:                "Teacher builds strong, trusting relationships with students through affirming interactions.",
			Tags:                []string{"relationships", "trust", "affirming-interactions"},
			HelpText:            "Look for positive, affirming teacher-student interactions",
			FrameworkAlignments: []string{"panorama", "crp-general", "casel-relationship-skills", "tripod-care"},
		},
		{
			Key:                 "lookfor10",
			Text:                "Instruction is differentiated and scaffolds support access for diverse learning needs.",
			Tags:                []string{"differentiation", "scaffolding", "diverse-learners"},
			HelpText:            "Observe differentiated instruction and scaffolding for all learners",
			FrameworkAlignments: []string{"inclusive-practices", "crp-general", "casel-equity-access", "tripod-clarify"},
		},
	}
	for i := range lookFors {
		lookFors[i].Type = model.QuestionTypeRating
		lookFors[i].Required = true
		lookFors[i].Scale = 4
		lookFors[i].Weight = 10
	}

	return model.Framework{
		ID:           "crp-in-action",
		Name:         "CRP in Action: Integrated Observation Tool",
		Description:  "Comprehensive evaluation framework integrating Culturally Responsive Practices",
		Version:      "1.0",
		Status:       model.FrameworkActive,
		LastModified: now,
		Tags:         []string{"crp", "culturally-responsive", "assessment"},
		Sections: []model.Section{
			{
				ID:          "integrated-lookfors",
				Title:       "10 Look-Fors: Integrated Observation",
				Description: "Evidence-based look-fors aligned to multiple frameworks",
				Weight:      100,
				Questions:   lookFors,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func sampleTeachers(now time.Time) []model.Teacher {
	teachers := []model.Teacher{
		{
			ID:         "teacher-chen",
			Name:       "Sarah Chen",
			Email:      "schen@district.edu",
			Department: "Mathematics",
			Grade:      "8",
			Subjects:   []string{"Algebra", "Geometry"},
		},
		{
			ID:         "teacher-rodriguez",
			Name:       "Marcus Rodriguez",
			Email:      "mrodriguez@district.edu",
			Department: "Science",
			Grade:      "7",
			Subjects:   []string{"Life Science"},
		},
		{
			ID:         "teacher-okafor",
			Name:       "Amara Okafor",
			Email:      "aokafor@district.edu",
			Department: "English Language Arts",
			Grade:      "6",
			Subjects:   []string{"Reading", "Writing"},
		},
	}
	for i := range teachers {
		teachers[i].CreatedAt = now
		teachers[i].UpdatedAt = now
	}
	return teachers
}
