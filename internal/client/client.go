// Package client 封装对后端 API 的访问：
// 请求前执行契约校验，响应按契约声明的形状检查，
// 列表查询带集合级缓存，写操作成功后失效对应集合。
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strconv"

	"github.com/folio/internal/contract"
	"github.com/folio/internal/db"
)

// APIError 表示服务端返回的非成功响应
type APIError struct {
	Status int
	Body   contract.ErrorBody
}

func (e *APIError) Error() string {
	if e.Body.Field != "" {
		return fmt.Sprintf("api error %d: %s (%s)", e.Status, e.Body.Message, e.Body.Field)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Body.Message)
}

// Client 是带会话与缓存的 API 客户端
type Client struct {
	baseURL string
	http    *http.Client
	cache   *Cache
}

// New 构造客户端，自动维护会话 cookie
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Jar: jar},
		cache:   NewCache(),
	}, nil
}

// do 发送一次契约操作：编码输入、替换路径参数、校验响应形状
func (c *Client) do(op contract.Operation, params map[string]string, input contract.Input) (int, []byte, error) {
	if input != nil {
		if err := input.Validate(); err != nil {
			return 0, nil, err
		}
	}

	url, err := contract.BuildURL(op.Path, params)
	if err != nil {
		return 0, nil, err
	}

	var body io.Reader
	if input != nil {
		encoded, err := json.Marshal(input)
		if err != nil {
			return 0, nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(op.Method, c.baseURL+url, body)
	if err != nil {
		return 0, nil, err
	}
	if input != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}

	// 仅对契约声明过的状态码做形状校验，
	// 未声明的状态码（如 500）交给上层转成 APIError
	if check, ok := op.Responses[resp.StatusCode]; ok {
		if err := check(data); err != nil {
			return resp.StatusCode, data, err
		}
	}

	return resp.StatusCode, data, nil
}

// call 执行操作并在状态码为 want 时解码响应体到 T
func call[T any](c *Client, op contract.Operation, params map[string]string, input contract.Input, want int) (T, error) {
	var out T

	status, data, err := c.do(op, params, input)
	if err != nil {
		return out, err
	}

	if status != want {
		var apiErr APIError
		apiErr.Status = status
		_ = json.Unmarshal(data, &apiErr.Body)
		return out, &apiErr
	}

	if want == http.StatusNoContent || len(data) == 0 {
		return out, nil
	}

	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

// cachedList 优先命中缓存，未命中时请求并写入缓存
func cachedList[T any](c *Client, op contract.Operation) (T, error) {
	if value, ok := c.cache.Get(op.Path); ok {
		if typed, ok := value.(T); ok {
			return typed, nil
		}
	}

	out, err := call[T](c, op, nil, nil, http.StatusOK)
	if err != nil {
		return out, err
	}

	c.cache.Set(op.Path, out)
	return out, nil
}

func idParams(id uint) map[string]string {
	return map[string]string{"id": strconv.FormatUint(uint64(id), 10)}
}

// Login 登录并建立会话
func (c *Client) Login(username, password string) (contract.UserBody, error) {
	return call[contract.UserBody](c, contract.API.Auth.Login, nil,
		&contract.Credentials{Username: username, Password: password}, http.StatusOK)
}

// Logout 结束当前会话
func (c *Client) Logout() error {
	_, err := call[struct{}](c, contract.API.Auth.Logout, nil, nil, http.StatusOK)
	return err
}

// Me 返回当前会话的用户信息
func (c *Client) Me() (contract.UserBody, error) {
	return call[contract.UserBody](c, contract.API.Auth.Me, nil, nil, http.StatusOK)
}

// Profile 返回个人信息，尚未创建时返回 nil
func (c *Client) Profile() (*db.Profile, error) {
	key := contract.API.Profile.Get.Path
	if value, ok := c.cache.Get(key); ok {
		if typed, ok := value.(*db.Profile); ok {
			return typed, nil
		}
	}

	profile, err := call[*db.Profile](c, contract.API.Profile.Get, nil, nil, http.StatusOK)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	c.cache.Set(key, profile)
	return profile, nil
}

// UpdateProfile 写入个人信息并失效缓存
func (c *Client) UpdateProfile(input contract.ProfileUpsert) (*db.Profile, error) {
	profile, err := call[*db.Profile](c, contract.API.Profile.Update, nil, &input, http.StatusOK)
	if err != nil {
		return nil, err
	}
	c.cache.Invalidate(contract.API.Profile.Get.Path)
	return profile, nil
}

// Skills 返回技能列表，带集合缓存
func (c *Client) Skills() ([]db.Skill, error) {
	return cachedList[[]db.Skill](c, contract.API.Skills.List)
}

// CreateSkill 创建技能并失效技能集合缓存
func (c *Client) CreateSkill(input contract.SkillCreate) (*db.Skill, error) {
	skill, err := call[*db.Skill](c, contract.API.Skills.Create, nil, &input, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	c.cache.Invalidate(contract.API.Skills.List.Path)
	return skill, nil
}

// UpdateSkill 部分更新技能并失效技能集合缓存
func (c *Client) UpdateSkill(id uint, patch contract.SkillPatch) (*db.Skill, error) {
	skill, err := call[*db.Skill](c, contract.API.Skills.Update, idParams(id), &patch, http.StatusOK)
	if err != nil {
		return nil, err
	}
	c.cache.Invalidate(contract.API.Skills.List.Path)
	return skill, nil
}

// DeleteSkill 删除技能并失效技能集合缓存
func (c *Client) DeleteSkill(id uint) error {
	if _, err := call[struct{}](c, contract.API.Skills.Delete, idParams(id), nil, http.StatusNoContent); err != nil {
		return err
	}
	c.cache.Invalidate(contract.API.Skills.List.Path)
	return nil
}

// Projects 返回项目列表，带集合缓存
func (c *Client) Projects() ([]db.Project, error) {
	return cachedList[[]db.Project](c, contract.API.Projects.List)
}

// CreateProject 创建项目并失效项目集合缓存
func (c *Client) CreateProject(input contract.ProjectCreate) (*db.Project, error) {
	project, err := call[*db.Project](c, contract.API.Projects.Create, nil, &input, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	c.cache.Invalidate(contract.API.Projects.List.Path)
	return project, nil
}

// UpdateProject 部分更新项目并失效项目集合缓存
func (c *Client) UpdateProject(id uint, patch contract.ProjectPatch) (*db.Project, error) {
	project, err := call[*db.Project](c, contract.API.Projects.Update, idParams(id), &patch, http.StatusOK)
	if err != nil {
		return nil, err
	}
	c.cache.Invalidate(contract.API.Projects.List.Path)
	return project, nil
}

// DeleteProject 删除项目并失效项目集合缓存
func (c *Client) DeleteProject(id uint) error {
	if _, err := call[struct{}](c, contract.API.Projects.Delete, idParams(id), nil, http.StatusNoContent); err != nil {
		return err
	}
	c.cache.Invalidate(contract.API.Projects.List.Path)
	return nil
}

// Socials 返回社交链接列表，带集合缓存
func (c *Client) Socials() ([]db.Social, error) {
	return cachedList[[]db.Social](c, contract.API.Socials.List)
}

// CreateSocial 创建社交链接并失效集合缓存
func (c *Client) CreateSocial(input contract.SocialCreate) (*db.Social, error) {
	social, err := call[*db.Social](c, contract.API.Socials.Create, nil, &input, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	c.cache.Invalidate(contract.API.Socials.List.Path)
	return social, nil
}

// UpdateSocial 部分更新社交链接并失效集合缓存
func (c *Client) UpdateSocial(id uint, patch contract.SocialPatch) (*db.Social, error) {
	social, err := call[*db.Social](c, contract.API.Socials.Update, idParams(id), &patch, http.StatusOK)
	if err != nil {
		return nil, err
	}
	c.cache.Invalidate(contract.API.Socials.List.Path)
	return social, nil
}

// DeleteSocial 删除社交链接并失效集合缓存
func (c *Client) DeleteSocial(id uint) error {
	if _, err := call[struct{}](c, contract.API.Socials.Delete, idParams(id), nil, http.StatusNoContent); err != nil {
		return err
	}
	c.cache.Invalidate(contract.API.Socials.List.Path)
	return nil
}

// Stats 返回后台统计
func (c *Client) Stats() (contract.StatsBody, error) {
	return call[contract.StatsBody](c, contract.API.Stats, nil, nil, http.StatusOK)
}
