package service

import (
	"lab-cms/internal/dto"
	"lab-cms/internal/model"
)

// toPostResponse author 为 nil 时不返回作者信息
func toPostResponse(post *model.Post, author *model.User) *dto.PostResponse {
	resp := &dto.PostResponse{
		ID:            post.ID,
		Title:         post.Title,
		Content:       post.Content,
		Summary:       post.Summary,
		CoverImage:    post.CoverImage,
		Status:        post.Status,
		AllowComments: post.AllowComments,
		Featured:      post.Featured,
		Tags:          post.Tags,
		ViewCount:     post.ViewCount,
		LikeCount:     post.LikeCount,
		CommentCount:  post.CommentCount,
		DisplayOrder:  post.DisplayOrder,
		PublishedAt:   post.PublishedAt,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
	}
	if author != nil {
		resp.AuthorName = author.DisplayName()
		resp.AuthorAvatar = author.AvatarURL
	}
	return resp
}

func toPostModel(req *dto.PostRequest) *model.Post {
	post := &model.Post{Status: model.PostStatusDraft}
	applyPostUpdate(post, req)
	return post
}

// applyPostUpdate 整体覆盖可编辑字段，未传的布尔值视为false
func applyPostUpdate(post *model.Post, req *dto.PostRequest) {
	post.Title = req.Title
	post.Content = req.Content
	post.Summary = req.Summary
	post.CoverImage = req.CoverImage
	if req.Status != nil {
		post.Status = *req.Status
	}
	post.AllowComments = req.AllowComments != nil && *req.AllowComments
	post.Featured = req.Featured != nil && *req.Featured
	post.Tags = req.Tags
}
