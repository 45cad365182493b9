package feed

import "github.com/devnilu/quora-clone/backend/internal/models"

// Fixed seed dataset, loaded whenever a collection is absent from the
// namespace or fails to parse.

func seedPosts() []models.Post {
	return []models.Post{
		{
			ID:      "p1",
			Type:    models.PostTypeQuestion,
			Title:   "What are the best ways to learn React?",
			Content: "Start with the official docs, build small apps, and learn hooks deeply.",
			Image:   "/assets/answers/ans-1.jpeg",
			Font:    "inherit",
			Author: &models.Author{
				ID:     "u1",
				Name:   "Amit Kumar",
				Avatar: "/assets/profiles/amit.jpg",
			},
			CreatedAt:    "2025-10-01T08:00:00Z",
			Upvotes:      45,
			Downvotes:    3,
			CommentsList: []models.Comment{},
		},
		{
			ID:      "p2",
			Type:    models.PostTypePost,
			Content: "React 19 is amazing! The new useOptimistic hook simplifies async UI updates.",
			Image:   "/assets/answers/ans-2.jpg",
			Font:    "Arial, sans-serif",
			Author: &models.Author{
				ID:     "u2",
				Name:   "Anjali Mehta",
				Avatar: "/assets/profiles/anjali.jpg",
			},
			CreatedAt:    "2025-09-30T15:00:00Z",
			Upvotes:      32,
			Downvotes:    2,
			CommentsList: []models.Comment{},
			Followed:     true,
		},
	}
}

func seedSpaces() []models.Space {
	return []models.Space{
		{ID: "s1", Name: "MERN Stack", Description: "Mongo, Express, React, Node.", Members: 8123, Color: "#E6F0FF"},
		{ID: "s2", Name: "Web Dev", Description: "Frontend, backend, fullstack.", Members: 10456, Color: "#FFF4E6"},
		{ID: "s3", Name: "Career Talk", Description: "Interviews & resumes.", Members: 5321, Color: "#F3E8FF"},
		{ID: "s4", Name: "Tech News", Description: "Latest in tech.", Members: 4398, Color: "#E6FFF6"},
		{ID: "s5", Name: "Design & UX", Description: "Product & UI/UX.", Members: 2876, Color: "#FFE6EC"},
		{ID: "s6", Name: "JavaScript", Description: "Tips & patterns.", Members: 12110, Color: "#FFFCE6"},
	}
}

func seedNotifications() []models.Notification {
	return []models.Notification{
		{
			ID:        "n1",
			From:      models.Sender{Name: "Amit Kumar", Avatar: "/assets/profiles/amit.jpg"},
			Text:      "Amit answered your question 'How does React re-render components?' — check it out.",
			CreatedAt: "2025-10-05T09:20:00Z",
			Unread:    true,
			Type:      models.NotificationAnswer,
		},
		{
			ID:        "n2",
			From:      models.Sender{Name: "Anjali Mehta", Avatar: "/assets/profiles/anjali.jpg"},
			Text:      "Anjali commented on your post: \"Nice explanation — can you show an example with hooks?\"",
			CreatedAt: "2025-10-04T14:10:00Z",
			Unread:    true,
			Type:      models.NotificationComment,
		},
		{
			ID:        "n3",
			From:      models.Sender{Name: "Quora Clone", Avatar: "/assets/profiles/nilu.jpg"},
			Text:      "Welcome! Get started by following some spaces and asking your first question.",
			CreatedAt: "2025-09-30T08:00:00Z",
			Read:      true,
			Type:      models.NotificationSystem,
		},
		{
			ID:        "n4",
			From:      models.Sender{Name: "Design & UX", Avatar: "/assets/profiles/nilu.jpg"},
			Text:      "New discussion in Design & UX: 'Microinteractions that delight' — join the conversation.",
			CreatedAt: "2025-09-29T11:45:00Z",
			Read:      true,
			Type:      models.NotificationSpace,
		},
		{
			ID:        "n5",
			From:      models.Sender{Name: "Sara Patel", Avatar: "/assets/profiles/nilu.jpg"},
			Text:      "Sara mentioned you in a comment: \"@you take a look at this resource — it helped me.\"",
			CreatedAt: "2025-09-28T19:02:00Z",
			Read:      true,
			Type:      models.NotificationMention,
		},
	}
}

func seedFollowing() []models.FollowRelation {
	return []models.FollowRelation{
		{ID: "u1", Name: "Amit Kumar", Avatar: "/assets/profiles/amit.jpg"},
		{ID: "u2", Name: "Anjali Mehta", Avatar: "/assets/profiles/anjali.jpg"},
		{ID: "u3", Name: "Jen Roberts", Avatar: "/assets/profiles/jen.jpg"},
		{ID: "u4", Name: "John Doe", Avatar: "/assets/profiles/john.jpg"},
		{ID: "u5", Name: "Sneha Rao", Avatar: "/assets/profiles/sneha.jpg"},
	}
}
