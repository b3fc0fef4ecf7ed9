package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fastlaundry/internal/domain"
)

func listPosts(posts postsAPI, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := posts.Posts(c.Request.Context())
		if err != nil {
			logger.Printf("list posts: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"message": "content service unavailable"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func getPost(posts postsAPI, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := posts.PostByID(c.Request.Context(), c.Param("id"))
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "post not found"})
		case err != nil:
			logger.Printf("get post %s: %v", c.Param("id"), err)
			c.JSON(http.StatusBadGateway, gin.H{"message": "content service unavailable"})
		default:
			c.JSON(http.StatusOK, post)
		}
	}
}

func createPost(posts postsAPI, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var post domain.Post
		if err := c.ShouldBindJSON(&post); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		created, err := posts.CreatePost(c.Request.Context(), bearerToken(c), post)
		if err != nil {
			logger.Printf("create post: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"message": "content service unavailable"})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updatePost(posts postsAPI, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var post domain.Post
		if err := c.ShouldBindJSON(&post); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		updated, err := posts.UpdatePost(c.Request.Context(), bearerToken(c), c.Param("id"), post)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "post not found"})
		case err != nil:
			logger.Printf("update post %s: %v", c.Param("id"), err)
			c.JSON(http.StatusBadGateway, gin.H{"message": "content service unavailable"})
		default:
			c.JSON(http.StatusOK, updated)
		}
	}
}

func deletePost(posts postsAPI, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := posts.DeletePost(c.Request.Context(), bearerToken(c), c.Param("id"))
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "post not found"})
		case err != nil:
			logger.Printf("delete post %s: %v", c.Param("id"), err)
			c.JSON(http.StatusBadGateway, gin.H{"message": "content service unavailable"})
		default:
			c.Status(http.StatusNoContent)
		}
	}
}
