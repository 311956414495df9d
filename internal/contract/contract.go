// Package contract 是前后端共享的 API 契约：
// 每个操作声明方法、路径模板、输入校验与各状态码对应的响应形状，
// 服务端注册路由与客户端发起请求都以此为唯一事实来源。
package contract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Input 是所有请求体类型的公共接口
type Input interface {
	Validate() error
}

// ResponseCheck 校验某一状态码下响应体是否符合声明的形状
type ResponseCheck func(data []byte) error

// Operation 描述契约中的一个 HTTP 操作
// Path 使用 gin 风格的 :id 占位符
type Operation struct {
	Method    string
	Path      string
	Responses map[int]ResponseCheck
}

// CollectionOps 汇总一个实体集合的四个标准操作
type CollectionOps struct {
	List   Operation
	Create Operation
	Update Operation
	Delete Operation
}

// shapeOf 返回将响应体解码为 T 的严格校验函数
// 未声明的字段视为契约漂移，直接报错
func shapeOf[T any]() ResponseCheck {
	return func(data []byte) error {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		var v T
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("response shape mismatch: %w", err)
		}
		return nil
	}
}

// emptyBody 校验无响应体的操作（204 等）
func emptyBody() ResponseCheck {
	return func(data []byte) error {
		if len(bytes.TrimSpace(data)) > 0 {
			return fmt.Errorf("expected empty response body, got %d bytes", len(data))
		}
		return nil
	}
}

// ErrorBody 是所有非 2xx 响应的统一形状
type ErrorBody struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// UserBody 是登录与会话查询返回的用户形状，绝不包含密码哈希
type UserBody struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// API 按实体分组声明全部操作，与路由注册及客户端封装一一对应
var API = struct {
	Auth struct {
		Login  Operation
		Logout Operation
		Me     Operation
	}
	Profile struct {
		Get    Operation
		Update Operation
	}
	Skills   CollectionOps
	Projects CollectionOps
	Socials  CollectionOps
	Stats    Operation
	Icons    Operation
}{
	Auth: struct {
		Login  Operation
		Logout Operation
		Me     Operation
	}{
		Login: Operation{
			Method: http.MethodPost,
			Path:   "/api/login",
			Responses: map[int]ResponseCheck{
				http.StatusOK:           shapeOf[UserBody](),
				http.StatusUnauthorized: shapeOf[ErrorBody](),
			},
		},
		Logout: Operation{
			Method: http.MethodPost,
			Path:   "/api/logout",
			Responses: map[int]ResponseCheck{
				http.StatusOK: emptyBody(),
			},
		},
		Me: Operation{
			Method: http.MethodGet,
			Path:   "/api/user",
			Responses: map[int]ResponseCheck{
				http.StatusOK:           shapeOf[UserBody](),
				http.StatusUnauthorized: shapeOf[ErrorBody](),
			},
		},
	},
	Profile: struct {
		Get    Operation
		Update Operation
	}{
		Get: Operation{
			Method: http.MethodGet,
			Path:   "/api/profile",
			Responses: map[int]ResponseCheck{
				http.StatusOK:       shapeOf[ProfileBody](),
				http.StatusNotFound: shapeOf[ErrorBody](),
			},
		},
		Update: Operation{
			Method: http.MethodPut,
			Path:   "/api/profile",
			Responses: map[int]ResponseCheck{
				http.StatusOK:           shapeOf[ProfileBody](),
				http.StatusBadRequest:   shapeOf[ErrorBody](),
				http.StatusUnauthorized: shapeOf[ErrorBody](),
			},
		},
	},
	Skills:   collection[SkillBody]("/api/skills"),
	Projects: collection[ProjectBody]("/api/projects"),
	Socials:  collection[SocialBody]("/api/socials"),
	Stats: Operation{
		Method: http.MethodGet,
		Path:   "/api/stats",
		Responses: map[int]ResponseCheck{
			http.StatusOK:           shapeOf[StatsBody](),
			http.StatusUnauthorized: shapeOf[ErrorBody](),
		},
	},
	Icons: Operation{
		Method: http.MethodGet,
		Path:   "/api/icons",
		Responses: map[int]ResponseCheck{
			http.StatusOK: shapeOf[[]IconOptionBody](),
		},
	},
}

// collection 构造一组标准 CRUD 操作
// 删除是幂等的：目标缺失时同样返回 204
func collection[T any](base string) CollectionOps {
	idPath := base + "/:id"
	return CollectionOps{
		List: Operation{
			Method: http.MethodGet,
			Path:   base,
			Responses: map[int]ResponseCheck{
				http.StatusOK: shapeOf[[]T](),
			},
		},
		Create: Operation{
			Method: http.MethodPost,
			Path:   base,
			Responses: map[int]ResponseCheck{
				http.StatusCreated:      shapeOf[T](),
				http.StatusBadRequest:   shapeOf[ErrorBody](),
				http.StatusUnauthorized: shapeOf[ErrorBody](),
			},
		},
		Update: Operation{
			Method: http.MethodPut,
			Path:   idPath,
			Responses: map[int]ResponseCheck{
				http.StatusOK:           shapeOf[T](),
				http.StatusBadRequest:   shapeOf[ErrorBody](),
				http.StatusUnauthorized: shapeOf[ErrorBody](),
				http.StatusNotFound:     shapeOf[ErrorBody](),
			},
		},
		Delete: Operation{
			Method: http.MethodDelete,
			Path:   idPath,
			Responses: map[int]ResponseCheck{
				http.StatusNoContent:    emptyBody(),
				http.StatusBadRequest:   shapeOf[ErrorBody](),
				http.StatusUnauthorized: shapeOf[ErrorBody](),
			},
		},
	}
}

// CheckResponse 按契约校验给定状态码下的响应体
// 未声明的状态码视为契约违例
func (op Operation) CheckResponse(status int, data []byte) error {
	check, ok := op.Responses[status]
	if !ok {
		return fmt.Errorf("status %d is not declared for %s %s", status, op.Method, op.Path)
	}
	return check(data)
}

// BuildURL 将路径模板中的 :name 占位符替换为给定参数
// 任何未解析的占位符都会报错，避免发出畸形 URL
func BuildURL(path string, params map[string]string) (string, error) {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if !strings.HasPrefix(segment, ":") {
			continue
		}
		name := segment[1:]
		value, ok := params[name]
		if !ok || strings.TrimSpace(value) == "" {
			return "", fmt.Errorf("missing url parameter %q in %s", name, path)
		}
		segments[i] = value
	}
	return strings.Join(segments, "/"), nil
}
