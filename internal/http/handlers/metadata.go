package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"

	"ridebook/internal/repositories"

	"github.com/gin-gonic/gin"
)

// The metadata surface is one path with method-based dispatch:
//   GET    /metadata-crud?collection=&key=   (key optional: list)
//   POST   /metadata-crud                    {collection, key, value}
//   PUT    /metadata-crud                    same as POST (upsert)
//   DELETE /metadata-crud?collection=&key=

type metadataPayload struct {
	Collection string          `json:"collection"`
	Key        string          `json:"key"`
	Value      json.RawMessage `json:"value"`
}

func MetadataGet(c *gin.Context) {
	repo := repositories.MetadataRepository{}
	collection := strings.TrimSpace(c.Query("collection"))
	key := strings.TrimSpace(c.Query("key"))

	if key == "" {
		list, err := repo.List(collection)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": list, "total": len(list)})
		return
	}

	item, err := repo.Get(collection, key)
	if err != nil {
		if err == sql.ErrNoRows {
			RespondError(c, http.StatusNotFound, "metadata item not found", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

func MetadataUpsert(c *gin.Context) {
	var payload metadataPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	item, err := repositories.MetadataRepository{}.Upsert(payload.Collection, payload.Key, payload.Value)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

func MetadataDelete(c *gin.Context) {
	collection := strings.TrimSpace(c.Query("collection"))
	key := strings.TrimSpace(c.Query("key"))
	if key == "" {
		RespondError(c, http.StatusBadRequest, "key is required", nil)
		return
	}

	if err := (repositories.MetadataRepository{}).Delete(collection, key); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "metadata item deleted"})
}
