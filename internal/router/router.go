package router

import (
	"github.com/folio/internal/contract"
	"github.com/folio/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter 配置 Gin 引擎和路由
// 路由表完全取自 contract 声明，避免两处维护
func SetupRouter(gdb *gorm.DB, sessionSecret string) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("folio_session", store))

	a := handler.NewAPI(gdb)
	api := contract.API
	auth := handler.AuthRequired()

	// 认证
	r.Handle(api.Auth.Login.Method, api.Auth.Login.Path, a.Login)
	r.Handle(api.Auth.Logout.Method, api.Auth.Logout.Path, a.Logout)
	r.Handle(api.Auth.Me.Method, api.Auth.Me.Path, a.Me)

	// 公开读取
	r.Handle(api.Profile.Get.Method, api.Profile.Get.Path, a.GetProfile)
	r.Handle(api.Skills.List.Method, api.Skills.List.Path, a.GetSkills)
	r.Handle(api.Projects.List.Method, api.Projects.List.Path, a.GetProjects)
	r.Handle(api.Socials.List.Method, api.Socials.List.Path, a.GetSocials)
	r.Handle(api.Icons.Method, api.Icons.Path, a.GetIcons)

	// 需要会话的写接口
	r.Handle(api.Profile.Update.Method, api.Profile.Update.Path, auth, a.UpdateProfile)

	r.Handle(api.Skills.Create.Method, api.Skills.Create.Path, auth, a.CreateSkill)
	r.Handle(api.Skills.Update.Method, api.Skills.Update.Path, auth, a.UpdateSkill)
	r.Handle(api.Skills.Delete.Method, api.Skills.Delete.Path, auth, a.DeleteSkill)

	r.Handle(api.Projects.Create.Method, api.Projects.Create.Path, auth, a.CreateProject)
	r.Handle(api.Projects.Update.Method, api.Projects.Update.Path, auth, a.UpdateProject)
	r.Handle(api.Projects.Delete.Method, api.Projects.Delete.Path, auth, a.DeleteProject)

	r.Handle(api.Socials.Create.Method, api.Socials.Create.Path, auth, a.CreateSocial)
	r.Handle(api.Socials.Update.Method, api.Socials.Update.Path, auth, a.UpdateSocial)
	r.Handle(api.Socials.Delete.Method, api.Socials.Delete.Path, auth, a.DeleteSocial)

	r.Handle(api.Stats.Method, api.Stats.Path, auth, a.GetStats)

	return r
}
